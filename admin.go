package main

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-martini/martini"
	"github.com/martini-contrib/render"
	"github.com/martini-contrib/sessions"
	"gopkg.in/go-playground/validator.v9"

	"quizdeck/models"
)

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

func AdminDashboardHandler(r render.Render, s sessions.Session, user *models.User) {
	users, err := models.AllUsers()
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}
	questions, err := models.AllQuestions()
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}

	data := templateData(s, user)
	data["Users"] = users
	data["Questions"] = questions
	r.HTML(http.StatusOK, "admin", data)
}

func MakeAdminHandler(params martini.Params, r render.Render, s sessions.Session) {
	id, ok := parseID(params["user_id"])
	if !ok {
		r.Error(http.StatusNotFound)
		return
	}
	promoted, err := models.PromoteUser(id)
	if err == models.ErrNotFound {
		r.Error(http.StatusNotFound)
		return
	}
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}
	s.AddFlash(promoted.Username + " is now an admin.")
	r.Redirect("/admin", http.StatusFound)
}

func DeleteUserHandler(params martini.Params, r render.Render, s sessions.Session) {
	id, ok := parseID(params["user_id"])
	if !ok {
		r.Error(http.StatusNotFound)
		return
	}
	switch err := models.DeleteUser(id); err {
	case nil:
	case models.ErrNotFound:
		r.Error(http.StatusNotFound)
		return
	default:
		r.Error(http.StatusInternalServerError)
		return
	}
	s.AddFlash("User deleted successfully.")
	r.Redirect("/admin", http.StatusFound)
}

func AddQuestionForm(r render.Render, s sessions.Session, user *models.User) {
	r.HTML(http.StatusOK, "add_question", templateData(s, user))
}

// questionFromForm reads the unsuffixed field names used by the edit form.
func questionFromForm(req *http.Request) models.Question {
	return models.Question{
		Question: req.FormValue("question"),
		OptionA:  req.FormValue("option_a"),
		OptionB:  req.FormValue("option_b"),
		OptionC:  req.FormValue("option_c"),
		OptionD:  req.FormValue("option_d"),
		Answer:   req.FormValue("answer"),
	}
}

// AddQuestionHandler accepts one or more questions submitted as indexed
// fields (question_0, option_a_0, ...). The whole batch is rejected when any
// item is missing a field.
func AddQuestionHandler(req *http.Request, r render.Render, s sessions.Session) {
	if err := req.ParseForm(); err != nil {
		r.Error(http.StatusBadRequest)
		return
	}

	var batch []models.Question
	for i := 0; ; i++ {
		suffix := fmt.Sprintf("_%d", i)
		if _, present := req.PostForm["question"+suffix]; !present {
			break
		}
		batch = append(batch, models.Question{
			Question: req.PostFormValue("question" + suffix),
			OptionA:  req.PostFormValue("option_a" + suffix),
			OptionB:  req.PostFormValue("option_b" + suffix),
			OptionC:  req.PostFormValue("option_c" + suffix),
			OptionD:  req.PostFormValue("option_d" + suffix),
			Answer:   req.PostFormValue("answer" + suffix),
		})
	}
	if len(batch) == 0 {
		s.AddFlash("All fields are required for each question.")
		r.Redirect("/add_question", http.StatusFound)
		return
	}

	if err := models.AddQuestions(batch); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			s.AddFlash("All fields are required for each question.")
			r.Redirect("/add_question", http.StatusFound)
			return
		}
		r.Error(http.StatusInternalServerError)
		return
	}

	s.AddFlash("Questions added successfully!")
	r.Redirect("/admin", http.StatusFound)
}

func EditQuestionForm(params martini.Params, r render.Render, s sessions.Session, user *models.User) {
	id, ok := parseID(params["question_id"])
	if !ok {
		r.Error(http.StatusNotFound)
		return
	}
	question, err := models.FindQuestion(id)
	if err == models.ErrNotFound {
		r.Error(http.StatusNotFound)
		return
	}
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}

	data := templateData(s, user)
	data["Question"] = question
	r.HTML(http.StatusOK, "edit_question", data)
}

// EditQuestionHandler overwrites all six fields of the question.
func EditQuestionHandler(params martini.Params, req *http.Request, r render.Render, s sessions.Session) {
	id, ok := parseID(params["question_id"])
	if !ok {
		r.Error(http.StatusNotFound)
		return
	}

	_, err := models.UpdateQuestion(id, questionFromForm(req))
	if err == models.ErrNotFound {
		r.Error(http.StatusNotFound)
		return
	}
	if _, invalid := err.(validator.ValidationErrors); invalid {
		s.AddFlash("All fields are required.")
		r.Redirect(fmt.Sprintf("/edit_question/%d", id), http.StatusFound)
		return
	}
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}

	s.AddFlash("Question updated successfully!")
	r.Redirect("/admin", http.StatusFound)
}

func DeleteQuestionHandler(params martini.Params, r render.Render, s sessions.Session) {
	id, ok := parseID(params["question_id"])
	if !ok {
		r.Error(http.StatusNotFound)
		return
	}
	switch err := models.DeleteQuestion(id); err {
	case nil:
	case models.ErrNotFound:
		r.Error(http.StatusNotFound)
		return
	default:
		r.Error(http.StatusInternalServerError)
		return
	}
	s.AddFlash("Question deleted successfully.")
	r.Redirect("/admin", http.StatusFound)
}
