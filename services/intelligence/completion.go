package intelligence

import (
	"context"
	"fmt"
	"strings"

	"wayfare/models"
)

// Complete produces the assistant reply for the conversation so far.
func (s *GeminiService) Complete(ctx context.Context, transcript []models.ChatMessage, prefs models.TravelPreferences) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("gemini api key not configured")
	}

	reply, err := s.client.GenerateContent(ctx, buildCompletionPrompt(transcript, prefs))
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return "", fmt.Errorf("completion returned empty reply")
	}
	return reply, nil
}
