package testsession

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.StartSession)
	r.Get("/", h.ListSessions)
	r.Get("/{id}", h.GetSnapshot)
	r.Post("/{id}/answer", h.SelectAnswer)
	r.Post("/{id}/confidence", h.SetConfidence)
	r.Post("/{id}/navigate", h.Navigate)
	r.Post("/{id}/flag", h.ToggleFlag)
	r.Post("/{id}/submit", h.Submit)
	r.Get("/{id}/results", h.GetResults)
	return r
}
