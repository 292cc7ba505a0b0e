package voicememo

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
	service MemoService
}

func NewHandler(service MemoService) *Handler {
	return &Handler{service: service}
}

type createMemoRequest struct {
	SessionID       *string `json:"session_id,omitempty"`
	QuestionID      string  `json:"question_id"`
	Framing         string  `json:"framing"`
	AudioURL        string  `json:"audio_url"`
	Transcript      string  `json:"transcript"`
	DurationSeconds int     `json:"duration_seconds"`
	SelectedAnswer  string  `json:"selected_answer"`
	IsCorrect       bool    `json:"is_correct"`
	ConfidenceLevel int     `json:"confidence_level"`
}

func (h *Handler) CreateMemo(w http.ResponseWriter, r *http.Request) {
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

	var req createMemoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		http.Error(w, "invalid question_id", http.StatusBadRequest)
		return
	}

	framing := Framing(req.Framing)
	if _, ok := framings[framing]; !ok {
		http.Error(w, "invalid framing", http.StatusBadRequest)
		return
	}

	input := CreateMemoInput{
		UserID:          userID,
		QuestionID:      questionID,
		Framing:         framing,
		AudioURL:        req.AudioURL,
		Transcript:      req.Transcript,
		DurationSeconds: req.DurationSeconds,
		SelectedAnswer:  req.SelectedAnswer,
		IsCorrect:       req.IsCorrect,
		ConfidenceLevel: req.ConfidenceLevel,
	}
	if req.SessionID != nil {
		sid, err := uuid.Parse(*req.SessionID)
		if err != nil {
			http.Error(w, "invalid session_id", http.StatusBadRequest)
			return
		}
		input.SessionID = &sid
	}

	memo, err := h.service.CreateMemo(r.Context(), input)
	if err != nil {
		if errors.Is(err, ErrQuestionNotFound) {
			http.Error(w, "question not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to create voice memo")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, memo)
}

func (h *Handler) GetMemo(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	memo, err := h.service.GetMemo(r.Context(), claims.UserID, chi.URLParam(r, "id"))
	if err != nil {
		log.WithError(err).Error("failed to fetch voice memo")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if memo == nil {
		http.Error(w, "voice memo not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, memo)
}

func (h *Handler) ListMemos(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	memos, err := h.service.ListMemos(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("failed to list voice memos")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, memos)
}
