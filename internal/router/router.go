package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/prepwise/upsc-prep-lambda/internal/auth"
	"github.com/prepwise/upsc-prep-lambda/internal/middlewares"
	"github.com/prepwise/upsc-prep-lambda/internal/question"
	"github.com/prepwise/upsc-prep-lambda/internal/questionset"
	"github.com/prepwise/upsc-prep-lambda/internal/testsession"
	"github.com/prepwise/upsc-prep-lambda/internal/user"
	"github.com/prepwise/upsc-prep-lambda/internal/voicememo"
)

type RouterConfig struct {
	UserHandler        *user.Handler
	QuestionHandler    *question.Handler
	QuestionSetHandler *questionset.Handler
	SessionHandler     *testsession.Handler
	VoiceMemoHandler   *voicememo.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/question-sets", questionset.Routes(cfg.QuestionSetHandler))
		r.Mount("/test-sessions", testsession.Routes(cfg.SessionHandler))
		r.Mount("/voice-memos", voicememo.Routes(cfg.VoiceMemoHandler))
	})
	return r
}
