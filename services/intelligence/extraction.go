package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"wayfare/models"
	"wayfare/services/geo"
	"wayfare/utils"

	"go.uber.org/zap"
)

// Extract pulls structured preference deltas from the conversation. Model
// output that is not valid JSON is treated as a parse failure: the empty
// delta comes back with degraded=true instead of an error.
func (s *GeminiService) Extract(ctx context.Context, transcript []models.ChatMessage) (models.PreferenceDelta, bool, error) {
	var delta models.PreferenceDelta
	if s.client == nil {
		return delta, false, fmt.Errorf("gemini api key not configured")
	}

	raw, err := s.client.GenerateContent(ctx, buildExtractionPrompt(transcript))
	if err != nil {
		return delta, false, fmt.Errorf("extraction failed: %w", err)
	}

	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &delta); err != nil {
		utils.GetLogger().Warn("Extraction response was not valid JSON, using empty delta",
			zap.Error(err))
		return models.PreferenceDelta{}, true, nil
	}

	normalizeDelta(&delta)
	return delta, false, nil
}

// normalizeDelta canonicalizes extracted dates and fills missing location
// codes from the static city table.
func normalizeDelta(d *models.PreferenceDelta) {
	if d.Dates != nil {
		d.Dates.Departure = geo.NormalizeDate(d.Dates.Departure)
		d.Dates.Return = geo.NormalizeDate(d.Dates.Return)
	}
	if d.Origin != nil && d.Origin.Code == "" && d.Origin.Name != "" {
		d.Origin.Code = geo.ResolveLocationCode(d.Origin.Name)
	}
	if d.Destination != nil && d.Destination.Code == "" && d.Destination.Name != "" {
		d.Destination.Code = geo.ResolveLocationCode(d.Destination.Name)
	}
}
