// File: services/availability/service.go
package availability

import (
	"context"
	"sort"
	"sync"
	"time"

	"wayfare/models"
	"wayfare/services/amadeus"
	"wayfare/services/geo"
	"wayfare/utils"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Fallback price bounds used when no priced flight offers come back.
const (
	fallbackMinPrice = 200.0
	fallbackMaxPrice = 800.0
)

// priceFlexThreshold is the spread above which pricing counts as flexible.
const priceFlexThreshold = 100.0

// QuickAvailability runs the flight and hotel searches concurrently and
// reduces the results to a snapshot. A failure in one category does not
// abort the other; the failing category is served by the adapter's mock
// fallback.
func (s *DefaultService) QuickAvailability(ctx context.Context, prefs models.TravelPreferences) (*models.QuickAvailabilitySnapshot, error) {
	if prefs.Origin == "" && prefs.OriginCode == "" {
		return nil, models.NewValidationError("origin", "origin is required for a quick search")
	}
	if prefs.Destination == "" && prefs.DestinationCode == "" {
		return nil, models.NewValidationError("destination", "destination is required for a quick search")
	}
	if prefs.Dates.Departure == "" {
		return nil, models.NewValidationError("dates.departure", "departure date is required for a quick search")
	}

	originCode := prefs.OriginCode
	if originCode == "" {
		originCode = geo.ResolveLocationCode(prefs.Origin)
	}
	destCode := prefs.DestinationCode
	if destCode == "" {
		destCode = geo.ResolveLocationCode(prefs.Destination)
	}

	var (
		wg      sync.WaitGroup
		flights []models.FlightOffer
		hotels  []models.HotelOffer
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		offers, err := s.Flights.SearchFlights(ctx, amadeus.FlightQuery{
			Origin:        originCode,
			Destination:   destCode,
			DepartureDate: prefs.Dates.Departure,
			ReturnDate:    prefs.Dates.Return,
			Adults:        prefs.Travelers,
			CabinClass:    prefs.Flights.Class,
		})
		if err != nil {
			utils.GetLogger().Warn("Quick search: flight branch failed", zap.Error(err))
			return
		}
		flights = offers
	}()
	go func() {
		defer wg.Done()
		offers, err := s.Hotels.SearchHotels(ctx, amadeus.HotelQuery{
			CityCode:     destCode,
			CheckInDate:  prefs.Dates.Departure,
			CheckOutDate: prefs.Dates.Return,
			Adults:       prefs.Travelers,
		})
		if err != nil {
			utils.GetLogger().Warn("Quick search: hotel branch failed", zap.Error(err))
			return
		}
		hotels = offers
	}()
	wg.Wait()

	snapshot := buildSnapshot(flights, hotels, prefs)
	return snapshot, nil
}

// buildSnapshot reduces raw offers to the snapshot aggregates and derives
// the analysis block from them. The analysis only ever reads aggregates of
// this same snapshot.
func buildSnapshot(flights []models.FlightOffer, hotels []models.HotelOffer, prefs models.TravelPreferences) *models.QuickAvailabilitySnapshot {
	// Offers whose carrier could not be identified stay out of the
	// airline and stop aggregates.
	identified := lo.Filter(flights, func(o models.FlightOffer, _ int) bool {
		return o.Airline != ""
	})
	airlines := lo.Uniq(lo.Map(identified, func(o models.FlightOffer, _ int) string {
		return o.Airline
	}))
	stops := lo.Uniq(lo.Map(identified, func(o models.FlightOffer, _ int) int {
		return o.Stops
	}))
	sort.Ints(stops)

	minPrice, maxPrice := fallbackMinPrice, fallbackMaxPrice
	priced := lo.Filter(flights, func(o models.FlightOffer, _ int) bool { return o.Price > 0 })
	if len(priced) > 0 {
		prices := lo.Map(priced, func(o models.FlightOffer, _ int) float64 { return o.Price })
		minPrice = lo.Min(prices)
		maxPrice = lo.Max(prices)
	}

	var hotelRanges []models.PriceRange
	nightly := lo.FilterMap(hotels, func(h models.HotelOffer, _ int) (float64, bool) {
		return h.NightlyPrice, h.NightlyPrice > 0
	})
	if len(nightly) > 0 {
		hotelRanges = []models.PriceRange{{Min: lo.Min(nightly), Max: lo.Max(nightly)}}
	}

	snapshot := &models.QuickAvailabilitySnapshot{
		Flights: models.FlightAggregates{
			Airlines:       airlines,
			MinPrice:       minPrice,
			MaxPrice:       maxPrice,
			AvailableStops: stops,
		},
		Hotels:             models.HotelAggregates{PriceRanges: hotelRanges},
		ActivityCategories: prefs.Activities.Interests,
		GeneratedAt:        time.Now().UTC(),
	}

	snapshot.Analysis = models.SnapshotAnalysis{
		HasMultipleAirlines: len(airlines) > 1,
		HasMultipleStops:    len(stops) > 1,
		HasFlexiblePricing:  maxPrice-minPrice > priceFlexThreshold,
		HasHotelVariety:     len(lo.Uniq(nightly)) > 1,
	}
	snapshot.Analysis.SuggestedQuestions = deriveQuestions(snapshot)
	return snapshot
}
