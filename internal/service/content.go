package service

import (
	"context"
	"time"

	"github.com/parazzit213/chil-life-bot/internal/generation"

	"go.uber.org/zap"
)

// ContentService produces model-generated text for leaf actions. Every
// call is bounded by the configured timeout; one attempt, then the
// fixed fallback string. A failed generation never fails the
// conversation.
type ContentService struct {
	generator generation.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

// NewContentService creates a new content service
func NewContentService(generator generation.Generator, timeout time.Duration, logger *zap.Logger) *ContentService {
	return &ContentService{
		generator: generator,
		timeout:   timeout,
		logger:    logger,
	}
}

// Generate returns generated text for the prompt, or the fallback
// string on error or timeout
func (s *ContentService) Generate(ctx context.Context, prompt string) string {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn("Text generation failed",
			zap.String("prompt", prompt),
			zap.Error(err),
		)
		return generation.FallbackText
	}
	return text
}
