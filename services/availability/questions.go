package availability

import (
	"fmt"

	"wayfare/models"
)

// deriveQuestions turns snapshot aggregates into follow-up questions. Each
// category is evaluated independently, first match wins within it, and the
// results are concatenated. Questions always interpolate the live aggregate
// values rather than generic placeholders.
func deriveQuestions(s *models.QuickAvailabilitySnapshot) []string {
	var questions []string

	if len(s.Flights.Airlines) == 1 {
		questions = append(questions, fmt.Sprintf(
			"Only %s flies this route — would you prefer a direct flight, or are connections okay?",
			s.Flights.Airlines[0]))
	}

	if s.Analysis.HasFlexiblePricing {
		questions = append(questions, fmt.Sprintf(
			"Flights range from $%.0f to $%.0f — do you have a flight budget in mind?",
			s.Flights.MinPrice, s.Flights.MaxPrice))
	}

	if s.Analysis.HasHotelVariety && len(s.Hotels.PriceRanges) > 0 {
		r := s.Hotels.PriceRanges[0]
		questions = append(questions, fmt.Sprintf(
			"Hotels run from $%.0f to $%.0f per night — what would you like to spend on accommodation?",
			r.Min, r.Max))
	}

	return questions
}
