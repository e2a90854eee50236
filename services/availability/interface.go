package availability

import (
	"context"

	"wayfare/models"
	"wayfare/services/amadeus"
)

// Service produces lightweight availability previews used to drive
// conversational follow-up. Snapshots are non-authoritative and are replaced
// wholesale on every search.
type Service interface {
	QuickAvailability(ctx context.Context, prefs models.TravelPreferences) (*models.QuickAvailabilitySnapshot, error)
}

// DefaultService implements Service over the flight and hotel adapters.
type DefaultService struct {
	Flights amadeus.FlightSearcher
	Hotels  amadeus.HotelSearcher
}
