package main

import (
	"net/http"

	"github.com/martini-contrib/render"

	"quizdeck/models"
)

type apiQuestion struct {
	ID       uint     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// APIQuestionsHandler dumps the whole question bank, answers included, as
// {"questions": [...]}. An empty bank yields an empty list, not null.
func APIQuestionsHandler(r render.Render) {
	questions, err := models.AllQuestions()
	if err != nil {
		r.JSON(http.StatusInternalServerError, map[string]string{"error": "could not load questions"})
		return
	}

	list := make([]apiQuestion, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		list = append(list, apiQuestion{
			ID:       q.ID,
			Question: q.Question,
			Options:  q.Options(),
			Answer:   q.Answer,
		})
	}
	r.JSON(http.StatusOK, map[string]interface{}{"questions": list})
}
