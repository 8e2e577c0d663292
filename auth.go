package main

import (
	"net/http"

	"github.com/martini-contrib/render"
	"github.com/martini-contrib/sessions"

	"quizdeck/models"
)

// templateData is the common binding for every rendered page: pending flash
// messages plus the current user, when there is one.
func templateData(s sessions.Session, user *models.User) map[string]interface{} {
	return map[string]interface{}{
		"Flashes": s.Flashes(),
		"User":    user,
	}
}

func IndexHandler(r render.Render, s sessions.Session) {
	r.HTML(http.StatusOK, "index", templateData(s, nil))
}

func RegisterForm(r render.Render, s sessions.Session) {
	r.HTML(http.StatusOK, "register", templateData(s, nil))
}

func RegisterHandler(req *http.Request, r render.Render, s sessions.Session) {
	username := req.FormValue("username")
	password := req.FormValue("password")
	if username == "" || password == "" {
		s.AddFlash("Username and password are required.")
		r.Redirect("/register", http.StatusFound)
		return
	}

	if _, err := models.RegisterUser(username, password); err != nil {
		if err == models.ErrUsernameTaken {
			s.AddFlash("Username already taken!")
			r.Redirect("/register", http.StatusFound)
			return
		}
		r.Error(http.StatusInternalServerError)
		return
	}

	s.AddFlash("Account created successfully!")
	r.Redirect("/login", http.StatusFound)
}

func LoginForm(r render.Render, s sessions.Session) {
	r.HTML(http.StatusOK, "login", templateData(s, nil))
}

// LoginHandler authenticates and routes admins to the dashboard, everyone
// else to the quiz page.
func LoginHandler(req *http.Request, r render.Render, s sessions.Session) {
	username := req.FormValue("username")
	password := req.FormValue("password")

	user, err := models.AuthenticateUser(username, password)
	switch err {
	case nil:
	case models.ErrNotFound:
		s.AddFlash("Username does not exist.")
		r.Redirect("/login", http.StatusFound)
		return
	case models.ErrInvalidCredential:
		s.AddFlash("Incorrect password. Please try again.")
		r.Redirect("/login", http.StatusFound)
		return
	default:
		r.Error(http.StatusInternalServerError)
		return
	}

	s.Set(sessionUserKey, user.ID)
	s.AddFlash("Login successful!")
	if user.IsAdmin {
		r.Redirect("/admin", http.StatusFound)
		return
	}
	r.Redirect("/quiz", http.StatusFound)
}

func LogoutHandler(r render.Render, s sessions.Session) {
	if key, ok := s.Get(sessionQuizKey).(string); ok {
		quizStore.Remove(key)
	}
	s.Clear()
	r.Redirect("/", http.StatusFound)
}
