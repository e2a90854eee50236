package options

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

type stubFlights struct {
	offers    []models.FlightOffer
	lastQuery amadeus.FlightQuery
}

func (s *stubFlights) SearchFlights(ctx context.Context, q amadeus.FlightQuery) ([]models.FlightOffer, error) {
	s.lastQuery = q
	return s.offers, nil
}

type stubHotels struct {
	offers []models.HotelOffer
}

func (s *stubHotels) SearchHotels(ctx context.Context, q amadeus.HotelQuery) ([]models.HotelOffer, error) {
	return s.offers, nil
}

type stubAI struct {
	activities []models.ActivitySuggestion
}

func (s *stubAI) Complete(ctx context.Context, transcript []models.ChatMessage, prefs models.TravelPreferences) (string, error) {
	return "", nil
}

func (s *stubAI) Extract(ctx context.Context, transcript []models.ChatMessage) (models.PreferenceDelta, bool, error) {
	return models.PreferenceDelta{}, false, nil
}

func (s *stubAI) SuggestActivities(ctx context.Context, prefs models.TravelPreferences) []models.ActivitySuggestion {
	return s.activities
}

type stubImages struct {
	results []models.ImageResult
	err     error
	calls   int
}

func (s *stubImages) SearchImages(ctx context.Context, query string, count int) ([]models.ImageResult, error) {
	s.calls++
	return s.results, s.err
}

func testService() (*DefaultService, *stubFlights, *stubImages) {
	flights := &stubFlights{offers: []models.FlightOffer{
		{
			Airline: "Air France", Price: 512, Stops: 1, Duration: "PT9H15M",
			Segments: []models.FlightSegment{
				{DepartureAirport: "MIA", DepartureTime: "2025-06-05T08:30:00", ArrivalAirport: "CDG", Carrier: "AF", FlightNumber: "AF99", Duration: "PT6H40M"},
				{DepartureAirport: "CDG", ArrivalAirport: "BOD", Carrier: "AF", FlightNumber: "AF7624", Duration: "PT1H20M"},
			},
		},
	}}
	hotels := &stubHotels{offers: []models.HotelOffer{
		{Name: "Grand Plaza", NightlyPrice: 180, Rating: 4.6, Location: "Bordeaux"},
		{Name: "Budget Stay", NightlyPrice: 70, Rating: 4.0, Location: "Bordeaux"},
	}}
	ai := &stubAI{activities: []models.ActivitySuggestion{
		{ID: "a1", Name: "Wine Tasting", Brief: "Taste local wines", Description: "A tour of Bordeaux wineries.", Price: 60, Rating: 4.8},
		{ID: "a2", Name: "River Cruise", Brief: "See the Garonne", Description: "A scenic river cruise.", Price: 30, Rating: 4.4},
	}}
	imgs := &stubImages{results: []models.ImageResult{{ID: "img", URLs: map[string]string{"regular": "https://img/regular"}}}}

	return &DefaultService{Flights: flights, Hotels: hotels, AI: ai, Images: imgs}, flights, imgs
}

func bordeauxPrefs() models.TravelPreferences {
	return models.TravelPreferences{
		Origin: "Miami", OriginCode: "MIA",
		Destination: "Bordeaux", DestinationCode: "BOD",
		Dates: models.TravelDates{Departure: "2025-06-05", Return: "2025-07-08"},
	}
}

func TestGenerateOptionsOrderingAndIDs(t *testing.T) {
	svc, _, _ := testService()

	opts, err := svc.GenerateOptions(context.Background(), bordeauxPrefs())
	require.NoError(t, err)
	require.Len(t, opts, 5)

	assert.Equal(t, "flight-1", opts[0].ID)
	assert.Equal(t, "hotel-1", opts[1].ID)
	assert.Equal(t, "hotel-2", opts[2].ID)
	assert.Equal(t, "activity-1", opts[3].ID)
	assert.Equal(t, "activity-2", opts[4].ID)

	seen := map[string]bool{}
	for _, o := range opts {
		assert.False(t, seen[o.ID], "duplicate id %s", o.ID)
		seen[o.ID] = true
		assert.True(t, strings.HasPrefix(o.ID, string(o.Type)+"-"))
	}
}

func TestGenerateOptionsFlightMapping(t *testing.T) {
	svc, _, _ := testService()

	opts, err := svc.GenerateOptions(context.Background(), bordeauxPrefs())
	require.NoError(t, err)

	flight := opts[0]
	assert.Equal(t, models.OptionFlight, flight.Type)
	assert.Equal(t, "7h 30m", humanizeISODuration("PT7H30M")) // sanity on helper
	assert.Equal(t, "9h 15m", flight.Duration)
	assert.Contains(t, flight.Title, "1 stop")
	assert.Contains(t, flight.Description, "Round-trip")
	assert.Equal(t, "2025-06-05T08:30:00", flight.Time)

	details, ok := flight.Details.(models.FlightOptionDetails)
	require.True(t, ok)
	require.Len(t, details.Segments, 2)
	assert.Equal(t, "AF99", details.Segments[0].FlightNumber)
	assert.Equal(t, "Round-trip", details.TripType)
}

func TestGenerateOptionsOneWay(t *testing.T) {
	svc, flights, _ := testService()

	prefs := bordeauxPrefs()
	prefs.Dates.Return = ""

	opts, err := svc.GenerateOptions(context.Background(), prefs)
	require.NoError(t, err)
	assert.Contains(t, opts[0].Description, "One-way")
	assert.Equal(t, "", flights.lastQuery.ReturnDate)
}

func TestGenerateOptionsActivityImages(t *testing.T) {
	svc, _, imgs := testService()

	opts, err := svc.GenerateOptions(context.Background(), bordeauxPrefs())
	require.NoError(t, err)

	// One image request per activity.
	assert.Equal(t, 2, imgs.calls)
	assert.Equal(t, "https://img/regular", opts[3].ImageSrc)
}

func TestGenerateOptionsImageFailureFallsBack(t *testing.T) {
	svc, _, imgs := testService()
	imgs.results = nil
	imgs.err = fmt.Errorf("rate limited")

	opts, err := svc.GenerateOptions(context.Background(), bordeauxPrefs())
	require.NoError(t, err)

	// Activities still format, with deterministic placeholder imagery.
	activity := opts[3]
	assert.Equal(t, models.OptionActivity, activity.Type)
	assert.Contains(t, activity.ImageSrc, "picsum.photos/seed/")
	assert.Equal(t, activity.ImageSrc, opts[3].ImageSrc)
}

func TestGenerateOptionsHotelNightlyPrice(t *testing.T) {
	svc, _, _ := testService()

	opts, err := svc.GenerateOptions(context.Background(), bordeauxPrefs())
	require.NoError(t, err)

	hotel := opts[1]
	assert.Equal(t, models.OptionHotel, hotel.Type)
	assert.Equal(t, 180.0, hotel.Price)
	assert.Contains(t, hotel.Description, "per night")
}
