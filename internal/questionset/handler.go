package questionset

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/prepwise/upsc-prep-lambda/internal/auth"
	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

type Handler struct {
	service QuestionSetService
}

func NewHandler(service QuestionSetService) *Handler {
	return &Handler{service: service}
}

type createSetRequest struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	TestType        string   `json:"test_type"`
	DurationSeconds int      `json:"duration_seconds"`
	NegativeMark    float64  `json:"negative_mark"`
	QuestionIDs     []string `json:"question_ids"`
}

func (h *Handler) CreateSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.QuestionIDs) == 0 {
		http.Error(w, "at least one question is required", http.StatusBadRequest)
		return
	}

	qs := &QuestionSet{
		Name:            req.Name,
		Description:     req.Description,
		TestType:        req.TestType,
		DurationSeconds: req.DurationSeconds,
		NegativeMark:    req.NegativeMark,
		CreatedByID:     userID,
	}
	if qs.TestType == "" {
		qs.TestType = "practice"
	}
	if qs.DurationSeconds == 0 {
		qs.DurationSeconds = DefaultDurationSeconds
	}
	if qs.NegativeMark == 0 {
		qs.NegativeMark = DefaultNegativeMark
	}
	if err := qs.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.service.CreateSet(r.Context(), qs, req.QuestionIDs); err != nil {
		if errors.Is(err, ErrUnknownQuestion) {
			http.Error(w, "one or more questions do not exist", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("failed to create question set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, qs)
}

func (h *Handler) GetSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "question set id required", http.StatusBadRequest)
		return
	}

	qs, err := h.service.GetSet(r.Context(), id)
	if err != nil {
		log.WithError(err).Error("failed to fetch question set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if qs == nil {
		http.Error(w, "question set not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, qs)
}

func (h *Handler) ListSets(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sets, err := h.service.ListSetsByUser(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to list question sets")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, sets)
}

func (h *Handler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "question set id required", http.StatusBadRequest)
		return
	}

	if err := h.service.DeleteSet(r.Context(), id); err != nil {
		log.WithError(err).Error("failed to delete question set")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{"message": "question set deleted"})
}
