package voicememo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.CreateMemo)
	r.Get("/", h.ListMemos)
	r.Get("/{id}", h.GetMemo)
	return r
}
