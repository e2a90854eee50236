package options

import (
	"context"

	"wayfare/models"
	"wayfare/services/amadeus"
	"wayfare/services/images"
	"wayfare/services/intelligence"
)

// Service turns the accumulated preferences into the unified list of
// selectable travel options consumed by the selection UI.
type Service interface {
	GenerateOptions(ctx context.Context, prefs models.TravelPreferences) ([]models.TravelOption, error)
}

// DefaultService implements Service over the flight, hotel, activity and
// image adapters.
type DefaultService struct {
	Flights amadeus.FlightSearcher
	Hotels  amadeus.HotelSearcher
	AI      intelligence.Service
	Images  images.Searcher
}
