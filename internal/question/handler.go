package question

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

type Handler struct {
	service QuestionService
}

func NewHandler(service QuestionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var q Question
	if err := json.NewDecoder(r.Body).Decode(&q); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := q.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateQuestion(r.Context(), &q); err != nil {
		log.WithError(err).Error("failed to create question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) GetQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	q, err := h.service.GetQuestion(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("failed to fetch question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if q == nil {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, q)
}

func (h *Handler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	filters := ListFilters{
		Topic:   r.URL.Query().Get("topic"),
		Source:  r.URL.Query().Get("source"),
		OrderBy: r.URL.Query().Get("order_by"),
	}
	if d := r.URL.Query().Get("difficulty"); d != "" {
		difficulty, err := ParseDifficulty(d)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		filters.Difficulty = difficulty
	}
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filters.Limit = limit
	}

	questions, err := h.service.ListQuestions(r.Context(), filters)
	if err != nil {
		log.WithError(err).Error("failed to list questions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "question id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteQuestion(r.Context(), id); err != nil {
		log.WithError(err).Error("failed to delete question")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "question deleted"})
}
