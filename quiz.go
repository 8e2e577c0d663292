package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/go-martini/martini"
	"github.com/google/uuid"
	"github.com/martini-contrib/render"
	"github.com/martini-contrib/sessions"

	"quizdeck/models"
)

const sessionQuizKey = "quiz_id"

var quizStore = newQuizSessionStore()

// quizKey returns the client's quiz-session key, minting one on first use.
func quizKey(s sessions.Session) string {
	if key, ok := s.Get(sessionQuizKey).(string); ok && key != "" {
		return key
	}
	key := uuid.New().String()
	s.Set(sessionQuizKey, key)
	return key
}

// QuizPageHandler shows the bank summary and the start form.
func QuizPageHandler(r render.Render, s sessions.Session, user *models.User) {
	count, err := models.CountQuestions()
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}
	data := templateData(s, user)
	data["TotalQuestions"] = count
	r.HTML(http.StatusOK, "quiz", data)
}

// StartQuizHandler snapshots the bank order and opens a fresh session.
func StartQuizHandler(r render.Render, s sessions.Session, user *models.User) {
	ids, err := models.QuestionIDs()
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}
	quizStore.Start(quizKey(s), ids)
	r.Redirect("/question/1", http.StatusFound)
}

// QuestionHandler renders question number n from the session's snapshot.
// Numbers past the snapshot, or snapshot IDs whose row was deleted
// mid-session, end the quiz instead of erroring.
func QuestionHandler(params martini.Params, r render.Render, s sessions.Session, user *models.User) {
	n, err := strconv.Atoi(params["number"])
	if err != nil || n < 1 {
		r.Error(http.StatusNotFound)
		return
	}

	qs := quizStore.Get(quizKey(s))
	if qs == nil || qs.State != stateInProgress {
		r.Redirect("/quiz", http.StatusFound)
		return
	}

	id, ok := qs.QuestionID(n)
	if !ok {
		r.Redirect("/result", http.StatusFound)
		return
	}
	question, err := models.FindQuestion(id)
	if err == models.ErrNotFound {
		r.Redirect("/result", http.StatusFound)
		return
	}
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}

	data := templateData(s, user)
	data["Question"] = question
	data["Options"] = question.Options()
	data["Number"] = n
	data["Total"] = qs.Total()
	r.HTML(http.StatusOK, "question", data)
}

// AnswerHandler scores the submitted answer against question n and moves the
// session forward. Correctness is exact, case-sensitive string equality.
func AnswerHandler(params martini.Params, req *http.Request, r render.Render, s sessions.Session, user *models.User) {
	n, err := strconv.Atoi(params["number"])
	if err != nil || n < 1 {
		r.Error(http.StatusNotFound)
		return
	}

	qs := quizStore.Get(quizKey(s))
	if qs == nil || qs.State != stateInProgress {
		r.Redirect("/quiz", http.StatusFound)
		return
	}

	id, ok := qs.QuestionID(n)
	if !ok {
		r.Redirect("/result", http.StatusFound)
		return
	}
	question, err := models.FindQuestion(id)
	if err == models.ErrNotFound {
		r.Redirect("/result", http.StatusFound)
		return
	}
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}

	qs.RecordAnswer(req.FormValue("answer") == question.Answer)
	r.Redirect(fmt.Sprintf("/question/%d", n+1), http.StatusFound)
}

// finalizeQuiz completes the session and persists the result. Only the first
// finalize of a session records anything.
func finalizeQuiz(qs *QuizSession, user *models.User) bool {
	score, total, first := qs.Finalize()
	if !first {
		return false
	}
	if _, err := models.RecordResult(user.ID, score, total); err != nil {
		log.Printf("failed to record quiz result for user %d: %v", user.ID, err)
	}
	return true
}

func SubmitQuizHandler(r render.Render, s sessions.Session, user *models.User) {
	if qs := quizStore.Get(quizKey(s)); qs != nil {
		if finalizeQuiz(qs, user) {
			s.AddFlash("Quiz submitted successfully!")
		}
	}
	r.Redirect("/result", http.StatusFound)
}

// ResultHandler finalizes a still-running session, then shows the latest
// result, the user's high score and the leaderboard. Revisiting the page
// never records a second result.
func ResultHandler(r render.Render, s sessions.Session, user *models.User) {
	if qs := quizStore.Get(quizKey(s)); qs != nil && qs.State == stateInProgress {
		finalizeQuiz(qs, user)
	}

	score, total := 0, 0
	if latest, err := models.LatestResult(user.ID); err != nil {
		r.Error(http.StatusInternalServerError)
		return
	} else if latest != nil {
		score, total = latest.Score, latest.Total
	}

	highScore, err := models.UserHighScore(user.ID)
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}
	leaderboard, err := models.Leaderboard(10)
	if err != nil {
		r.Error(http.StatusInternalServerError)
		return
	}

	data := templateData(s, user)
	data["Score"] = score
	data["Total"] = total
	data["HighScore"] = highScore
	data["Leaderboard"] = leaderboard
	r.HTML(http.StatusOK, "result", data)
}
