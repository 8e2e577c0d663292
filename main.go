package main

import (
	"log"
	"os"

	"github.com/go-martini/martini"
	"github.com/martini-contrib/render"
	"github.com/martini-contrib/sessions"

	"quizdeck/models"
)

func secretKey() string {
	key := os.Getenv("SECRET_KEY")
	if key == "" {
		log.Println("SECRET_KEY not set, using the default key; set it in production")
		key = "default_secret_key"
	}
	return key
}

// app assembles the middleware stack and the route table.
func app() *martini.ClassicMartini {
	m := martini.Classic()
	m.Use(render.Renderer(render.Options{
		Directory:  "templates",
		Extensions: []string{".tmpl"},
	}))
	m.Use(sessions.Sessions("quizdeck_session", sessions.NewCookieStore([]byte(secretKey()))))

	m.Get("/", IndexHandler)
	m.Get("/register", RegisterForm)
	m.Post("/register", RegisterHandler)
	m.Get("/login", LoginForm)
	m.Post("/login", LoginHandler)
	m.Get("/logout", RequireLogin, LogoutHandler)

	m.Get("/quiz", RequireLogin, QuizPageHandler)
	m.Post("/quiz", RequireLogin, StartQuizHandler)
	m.Get("/question/:number", RequireLogin, QuestionHandler)
	m.Post("/question/:number", RequireLogin, AnswerHandler)
	m.Post("/submit_quiz", RequireLogin, SubmitQuizHandler)
	m.Get("/result", RequireLogin, ResultHandler)

	m.Get("/admin", RequireLogin, RequireAdmin, AdminDashboardHandler)
	m.Get("/make_admin/:user_id", RequireLogin, RequireAdmin, MakeAdminHandler)
	m.Get("/delete_user/:user_id", RequireLogin, RequireAdmin, DeleteUserHandler)
	m.Get("/edit_question/:question_id", RequireLogin, RequireAdmin, EditQuestionForm)
	m.Post("/edit_question/:question_id", RequireLogin, RequireAdmin, EditQuestionHandler)
	m.Get("/delete_question/:question_id", RequireLogin, RequireAdmin, DeleteQuestionHandler)
	m.Get("/add_question", RequireLogin, RequireAdmin, AddQuestionForm)
	m.Post("/add_question", RequireLogin, RequireAdmin, AddQuestionHandler)

	m.Get("/api/questions", APIQuestionsHandler)

	return m
}

func main() {
	db := models.InitDB()
	defer db.Close()

	app().Run()
}
