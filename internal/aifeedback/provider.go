package aifeedback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
)

type Provider interface {
	SendPrompt(ctx context.Context, system, user string) (*Feedback, error)
}

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) SendPrompt(ctx context.Context, system, user string) (*Feedback, error) {
	log := config.WithContext(ctx)
	prompt := system + "\n\n" + user

	result, err := p.client.Models.GenerateContent(
		ctx,
		"gemini-2.0-flash",
		genai.Text(prompt),
		nil,
	)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return nil, fmt.Errorf("failed to generate feedback: %w", err)
	}

	raw := result.Text()
	log.Debugf("raw Gemini response:\n%s", raw)

	if raw == "" {
		return nil, errors.New("empty response from model")
	}

	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	clean = strings.Trim(clean, "`")

	var feedback Feedback
	if err := json.Unmarshal([]byte(clean), &feedback); err != nil {
		log.WithError(err).Errorf("failed to decode feedback JSON, cleaned content:\n%s", clean)
		return nil, fmt.Errorf("failed to decode feedback JSON: %w", err)
	}

	log.Info("voice memo feedback generated")
	return &feedback, nil
}
