package aifeedback

import (
	"context"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

type AIFeedbackContainer struct {
	Service Service
}

func NewAIFeedbackContainer() *AIFeedbackContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		// Feedback is best-effort; the app runs without it.
		config.Logger().WithError(err).Warn("Gemini provider unavailable, voice memo analysis disabled")
	}
	service := NewService(provider)

	return &AIFeedbackContainer{
		Service: service,
	}
}
