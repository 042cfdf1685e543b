package services

import (
	"context"
	"fmt"
)

// MentorService answers career questions, optionally grounded on a context
// string derived from the user's latest analysis.
type MentorService interface {
	Reply(ctx context.Context, message, userContext string) (string, error)
}

type mentorService struct {
	gemini        GeminiService
	promptBuilder *PromptBuilder
}

func NewMentorService(gemini GeminiService) MentorService {
	return &mentorService{
		gemini:        gemini,
		promptBuilder: NewPromptBuilder(),
	}
}

// Reply implements MentorService.
func (m *mentorService) Reply(ctx context.Context, message, userContext string) (string, error) {
	prompt := m.promptBuilder.BuildMentorPrompt(message, userContext)

	reply, err := m.gemini.GenerateText(ctx, prompt, 0.7)
	if err != nil {
		return "", fmt.Errorf("failed to generate mentor reply: %w", err)
	}

	return reply, nil
}
