package testsession

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/prepwise/upsc-prep-lambda/internal/auth"
	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

type Handler struct {
	service SessionService
}

func NewHandler(service SessionService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.QuestionSetID == "" {
		http.Error(w, "question_set_id is required", http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.StartSession(r.Context(), claims.UserID, req.QuestionSetID)
	if err != nil {
		h.writeError(w, r, err, "failed to start test session")
		return
	}

	log.WithField("session_id", snapshot.SessionID).Info("session started via API")
	config.JSON(w, http.StatusCreated, snapshot)
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	snapshot, err := h.service.GetSnapshot(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "failed to fetch session state")
		return
	}
	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req answerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.SelectAnswer(r.Context(), claims.UserID, chi.URLParam(r, "id"), req.QuestionID, req.SelectedOption)
	if err != nil {
		h.writeError(w, r, err, "failed to record answer")
		return
	}
	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) SetConfidence(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req confidenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	decision, err := h.service.SetConfidence(r.Context(), claims.UserID, chi.URLParam(r, "id"), req.QuestionID, req.Level)
	if err != nil {
		h.writeError(w, r, err, "failed to record confidence")
		return
	}
	config.JSON(w, http.StatusOK, decision)
}

func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	var snapshot Snapshot
	if req.Index != nil {
		snapshot, err = h.service.JumpTo(r.Context(), claims.UserID, chi.URLParam(r, "id"), *req.Index)
	} else {
		snapshot, err = h.service.Navigate(r.Context(), claims.UserID, chi.URLParam(r, "id"), req.Direction)
	}
	if err != nil {
		h.writeError(w, r, err, "failed to navigate")
		return
	}
	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) ToggleFlag(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req flagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	snapshot, err := h.service.ToggleFlag(r.Context(), claims.UserID, chi.URLParam(r, "id"), req.QuestionID)
	if err != nil {
		h.writeError(w, r, err, "failed to toggle flag")
		return
	}
	config.JSON(w, http.StatusOK, snapshot)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	session, err := h.service.Submit(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "failed to submit test session")
		return
	}
	config.JSON(w, http.StatusOK, session)
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sessions, err := h.service.ListSessions(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to list sessions")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	config.JSON(w, http.StatusOK, sessions)
}

func (h *Handler) GetResults(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	results, err := h.service.GetResults(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err, "failed to fetch results")
		return
	}
	config.JSON(w, http.StatusOK, results)
}

// writeError maps engine errors onto HTTP statuses.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log := config.WithContext(r.Context())

	switch {
	case errors.Is(err, ErrSessionNotFound):
		http.Error(w, "test session not found", http.StatusNotFound)
	case errors.Is(err, ErrForbidden):
		http.Error(w, "forbidden", http.StatusForbidden)
	case errors.Is(err, ErrSessionNotActive), errors.Is(err, ErrAlreadyStarted):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrNoQuestions),
		errors.Is(err, ErrUnknownQuestion),
		errors.Is(err, ErrInvalidConfidence),
		errors.Is(err, ErrInvalidDirection):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrIdentityUnresolved):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
