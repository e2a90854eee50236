package intelligence

import (
	"context"

	"wayfare/models"
)

// Service is the conversational AI surface: free-text replies, structured
// preference extraction and activity suggestions.
type Service interface {
	// Complete produces the assistant's natural-language reply for the
	// conversation so far.
	Complete(ctx context.Context, transcript []models.ChatMessage, prefs models.TravelPreferences) (string, error)

	// Extract pulls structured preference deltas out of the conversation.
	// A response that cannot be parsed yields an empty delta with
	// degraded=true rather than an error; err is reserved for upstream
	// failures.
	Extract(ctx context.Context, transcript []models.ChatMessage) (delta models.PreferenceDelta, degraded bool, err error)

	// SuggestActivities proposes 3-5 activities for the destination.
	// Upstream failures fall back to deterministic suggestions, so this
	// never fails.
	SuggestActivities(ctx context.Context, prefs models.TravelPreferences) []models.ActivitySuggestion
}

// GeminiService implements Service on top of the Gemini API. A nil client
// (no API key configured) degrades every call to its fallback path.
type GeminiService struct {
	client *GeminiClient
}

func NewGeminiService(apiKey string) *GeminiService {
	if apiKey == "" {
		return &GeminiService{}
	}
	return &GeminiService{client: NewGeminiClient(apiKey)}
}
