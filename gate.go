package main

import (
	"net/http"

	"github.com/go-martini/martini"
	"github.com/martini-contrib/render"
	"github.com/martini-contrib/sessions"

	"quizdeck/models"
)

const sessionUserKey = "user_id"

// RequireLogin sends anonymous requests to the login page and maps the
// authenticated user into the request context for downstream handlers.
// Writing the redirect stops the chain before any gated handler runs.
func RequireLogin(s sessions.Session, r render.Render, c martini.Context) {
	id, ok := s.Get(sessionUserKey).(uint)
	if !ok {
		r.Redirect("/login", http.StatusFound)
		return
	}
	user, err := models.FindUserByID(id)
	if err != nil {
		// stale cookie, e.g. the account was deleted
		s.Delete(sessionUserKey)
		r.Redirect("/login", http.StatusFound)
		return
	}
	c.Map(user)
}

// RequireAdmin runs after RequireLogin and rejects non-admins outright.
func RequireAdmin(user *models.User, r render.Render) {
	if !user.IsAdmin {
		r.Error(http.StatusForbidden)
	}
}
