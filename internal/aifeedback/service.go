package aifeedback

import (
	"context"
	"errors"
)

var (
	ErrEmptyTranscript     = errors.New("transcript is empty")
	ErrProviderUnavailable = errors.New("feedback provider is not configured")
)

type Service interface {
	AnalyzeTranscript(ctx context.Context, req AnalysisRequest) (*Feedback, error)
}

type service struct {
	provider Provider
}

func NewService(provider Provider) Service {
	return &service{provider: provider}
}

func (s *service) AnalyzeTranscript(ctx context.Context, req AnalysisRequest) (*Feedback, error) {
	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}
	if req.Transcript == "" {
		return nil, ErrEmptyTranscript
	}

	user := BuildUserPrompt(req)
	return s.provider.SendPrompt(ctx, systemPrompt, user)
}
