package intelligence

import (
	"encoding/json"
	"fmt"
	"strings"

	"wayfare/models"
)

const completionSystemPrompt = `You are Wayfare's travel-planning assistant. You help the user shape a trip:
where from, where to, when, how many travelers, budget, flight and hotel
preferences, and what they want to do there. Ask for at most one missing
detail per reply. Keep replies short, warm and concrete. Never invent
bookings or prices.`

const extractionPrompt = `Read the conversation below and return ONLY a JSON object capturing any
travel preferences mentioned. Use exactly this shape, omitting fields the
conversation says nothing about:

{
  "origin": {"name": "", "code": ""},
  "destination": {"name": "", "code": ""},
  "dates": {"departure": "YYYY-MM-DD", "return": "YYYY-MM-DD", "flexibility": ""},
  "travelers": 0,
  "budget": {"min": 0, "max": 0, "total": 0, "priority": ""},
  "flights": {"airlines": [], "class": "", "direct": null},
  "accommodation": {"type": "", "amenities": [], "location": ""},
  "activities": {"interests": [], "pacePreference": ""}
}

Use 3-letter location codes when you know them. Respond with JSON only, no
commentary.`

const activitiesPromptTemplate = `Suggest %d activities for a traveler visiting %s.%s
Return ONLY a JSON array where each entry has this shape:

{"id": "", "name": "", "brief": "one line", "description": "a short paragraph", "price": 0, "rating": 0, "category": ""}

Prices are estimates in USD per person. Respond with JSON only.`

// renderTranscript flattens recent conversation turns into prompt text,
// keeping the last maxTurns messages.
func renderTranscript(transcript []models.ChatMessage, maxTurns int) string {
	if len(transcript) > maxTurns {
		transcript = transcript[len(transcript)-maxTurns:]
	}
	var sb strings.Builder
	for _, m := range transcript {
		if m.Role == models.RoleSystem {
			continue
		}
		sb.WriteString(string(m.Role))
		sb.WriteString(": ")
		sb.WriteString(m.Content)
		sb.WriteString("\n")
	}
	return sb.String()
}

func buildCompletionPrompt(transcript []models.ChatMessage, prefs models.TravelPreferences) string {
	prefsJSON, _ := json.MarshalIndent(prefs, "", "  ")
	return fmt.Sprintf("%s\n\nKnown preferences so far:\n%s\n\nConversation:\n%s\nassistant:",
		completionSystemPrompt, string(prefsJSON), renderTranscript(transcript, 20))
}

func buildExtractionPrompt(transcript []models.ChatMessage) string {
	return fmt.Sprintf("%s\n\nConversation:\n%s", extractionPrompt, renderTranscript(transcript, 20))
}

func buildActivitiesPrompt(prefs models.TravelPreferences, count int) string {
	interests := ""
	if len(prefs.Activities.Interests) > 0 {
		interests = " They are interested in: " + strings.Join(prefs.Activities.Interests, ", ") + "."
	}
	return fmt.Sprintf(activitiesPromptTemplate, count, prefs.Destination, interests)
}
