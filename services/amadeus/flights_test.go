package amadeus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const flightOffersFixture = `{
  "data": [
    {
      "id": "1",
      "price": {"grandTotal": "512.40", "currency": "USD"},
      "itineraries": [
        {
          "duration": "PT9H15M",
          "segments": [
            {
              "departure": {"iataCode": "MIA", "at": "2025-06-05T08:30:00"},
              "arrival": {"iataCode": "CDG", "at": "2025-06-05T15:10:00"},
              "carrierCode": "AF",
              "number": "99",
              "duration": "PT6H40M"
            },
            {
              "departure": {"iataCode": "CDG", "at": "2025-06-05T16:25:00"},
              "arrival": {"iataCode": "BOD", "at": "2025-06-05T17:45:00"},
              "carrierCode": "AF",
              "number": "7624",
              "duration": "PT1H20M"
            }
          ]
        }
      ],
      "validatingAirlineCodes": ["AF"]
    },
    {
      "id": "2",
      "price": {"grandTotal": "", "currency": "USD"},
      "itineraries": [
        {"duration": "PT8H", "segments": []}
      ]
    }
  ]
}`

func TestParseFlightOffers(t *testing.T) {
	offers, err := parseFlightOffers([]byte(flightOffersFixture))
	require.NoError(t, err)

	// The unpriced offer is dropped.
	require.Len(t, offers, 1)

	offer := offers[0]
	assert.Equal(t, 512.40, offer.Price)
	assert.Equal(t, "Air France", offer.Airline)
	assert.Equal(t, "AF", offer.AirlineCode)
	assert.Equal(t, 1, offer.Stops)
	assert.Equal(t, "PT9H15M", offer.Duration)

	require.Len(t, offer.Segments, 2)
	assert.Equal(t, "MIA", offer.Segments[0].DepartureAirport)
	assert.Equal(t, "AF99", offer.Segments[0].FlightNumber)
	assert.Equal(t, "BOD", offer.Segments[1].ArrivalAirport)
	assert.Equal(t, "PT1H20M", offer.Segments[1].Duration)
}

func TestParseFlightOffersMalformed(t *testing.T) {
	_, err := parseFlightOffers([]byte("not json"))
	assert.Error(t, err)
}

func TestParsePriceCoercion(t *testing.T) {
	assert.Equal(t, 199.99, parsePrice("199.99"))
	assert.Equal(t, 0.0, parsePrice(""))
	assert.Equal(t, 0.0, parsePrice("free"))
}
