package questionset

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateSet)
	r.Get("/", h.ListSets)
	r.Get("/{id}", h.GetSet)
	r.Delete("/{id}", h.DeleteSet)
	return r
}
