package availability

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"wayfare/models"
	"wayfare/services/amadeus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFlightSearcher struct {
	offers []models.FlightOffer
	err    error
	calls  int
}

func (s *stubFlightSearcher) SearchFlights(ctx context.Context, q amadeus.FlightQuery) ([]models.FlightOffer, error) {
	s.calls++
	return s.offers, s.err
}

type stubHotelSearcher struct {
	offers []models.HotelOffer
	err    error
}

func (s *stubHotelSearcher) SearchHotels(ctx context.Context, q amadeus.HotelQuery) ([]models.HotelOffer, error) {
	return s.offers, s.err
}

func validPrefs() models.TravelPreferences {
	return models.TravelPreferences{
		Origin:      "Miami",
		Destination: "Bordeaux",
		Dates:       models.TravelDates{Departure: "2025-06-05"},
	}
}

func TestQuickAvailabilityValidation(t *testing.T) {
	svc := &DefaultService{Flights: &stubFlightSearcher{}, Hotels: &stubHotelSearcher{}}

	_, err := svc.QuickAvailability(context.Background(), models.TravelPreferences{
		Destination: "Bordeaux",
		Dates:       models.TravelDates{Departure: "2025-06-05"},
	})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))

	_, err = svc.QuickAvailability(context.Background(), models.TravelPreferences{
		Origin:      "Miami",
		Destination: "Bordeaux",
	})
	require.Error(t, err)
	assert.True(t, models.IsValidationError(err))
}

func TestQuickAvailabilityPriceBoundsOrdered(t *testing.T) {
	flights := &stubFlightSearcher{offers: []models.FlightOffer{
		{Airline: "Air France", Price: 620, Stops: 0},
		{Airline: "Iberia", Price: 410, Stops: 1},
		{Airline: "Lufthansa", Price: 580, Stops: 1},
	}}
	hotels := &stubHotelSearcher{offers: []models.HotelOffer{
		{Name: "A", NightlyPrice: 90},
		{Name: "B", NightlyPrice: 240},
	}}
	svc := &DefaultService{Flights: flights, Hotels: hotels}

	snap, err := svc.QuickAvailability(context.Background(), validPrefs())
	require.NoError(t, err)

	assert.LessOrEqual(t, snap.Flights.MinPrice, snap.Flights.MaxPrice)
	assert.Equal(t, 410.0, snap.Flights.MinPrice)
	assert.Equal(t, 620.0, snap.Flights.MaxPrice)

	require.Len(t, snap.Hotels.PriceRanges, 1)
	assert.LessOrEqual(t, snap.Hotels.PriceRanges[0].Min, snap.Hotels.PriceRanges[0].Max)

	assert.True(t, snap.Analysis.HasMultipleAirlines)
	assert.True(t, snap.Analysis.HasMultipleStops)
	assert.True(t, snap.Analysis.HasFlexiblePricing)
	assert.True(t, snap.Analysis.HasHotelVariety)
}

// Single airline with two distinct stop counts: the direct-vs-connection
// question must name the airline.
func TestQuickAvailabilitySingleAirlineQuestion(t *testing.T) {
	flights := &stubFlightSearcher{offers: []models.FlightOffer{
		{Airline: "Air France", Price: 500, Stops: 0},
		{Airline: "Air France", Price: 430, Stops: 1},
	}}
	svc := &DefaultService{Flights: flights, Hotels: &stubHotelSearcher{}}

	snap, err := svc.QuickAvailability(context.Background(), validPrefs())
	require.NoError(t, err)

	assert.False(t, snap.Analysis.HasMultipleAirlines)
	assert.True(t, snap.Analysis.HasMultipleStops)

	found := false
	for _, q := range snap.Analysis.SuggestedQuestions {
		if strings.Contains(q, "Air France") && strings.Contains(q, "direct") {
			found = true
		}
	}
	assert.True(t, found, "expected a direct-vs-connection question naming Air France, got %v", snap.Analysis.SuggestedQuestions)
}

func TestQuickAvailabilityUnidentifiedCarriersExcluded(t *testing.T) {
	flights := &stubFlightSearcher{offers: []models.FlightOffer{
		{Airline: "Air France", Price: 500, Stops: 0},
		{Airline: "", Price: 120, Stops: 3},
	}}
	svc := &DefaultService{Flights: flights, Hotels: &stubHotelSearcher{}}

	snap, err := svc.QuickAvailability(context.Background(), validPrefs())
	require.NoError(t, err)

	assert.Equal(t, []string{"Air France"}, snap.Flights.Airlines)
	assert.Equal(t, []int{0}, snap.Flights.AvailableStops)
	// Pricing still counts the unidentified offer.
	assert.Equal(t, 120.0, snap.Flights.MinPrice)
}

func TestQuickAvailabilityFallbackPriceRange(t *testing.T) {
	svc := &DefaultService{
		Flights: &stubFlightSearcher{err: fmt.Errorf("boom")},
		Hotels:  &stubHotelSearcher{},
	}

	snap, err := svc.QuickAvailability(context.Background(), validPrefs())
	require.NoError(t, err)
	assert.Equal(t, fallbackMinPrice, snap.Flights.MinPrice)
	assert.Equal(t, fallbackMaxPrice, snap.Flights.MaxPrice)
}

func TestQuickAvailabilityQuestionsInterpolateValues(t *testing.T) {
	flights := &stubFlightSearcher{offers: []models.FlightOffer{
		{Airline: "Iberia", Price: 300, Stops: 0},
		{Airline: "Vueling", Price: 550, Stops: 1},
	}}
	hotels := &stubHotelSearcher{offers: []models.HotelOffer{
		{Name: "A", NightlyPrice: 80},
		{Name: "B", NightlyPrice: 200},
	}}
	svc := &DefaultService{Flights: flights, Hotels: hotels}

	snap, err := svc.QuickAvailability(context.Background(), validPrefs())
	require.NoError(t, err)

	joined := strings.Join(snap.Analysis.SuggestedQuestions, " | ")
	assert.Contains(t, joined, "$300")
	assert.Contains(t, joined, "$550")
	assert.Contains(t, joined, "$80")
	assert.Contains(t, joined, "$200")
}
