package amadeus

import (
	"context"

	"wayfare/models"
)

// FlightQuery is the input to a flight search. Origin, Destination and
// DepartureDate are required; everything else degrades to sane defaults.
type FlightQuery struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Adults        int
	CabinClass    string
	NonStop       bool
}

// HotelQuery is the input to a hotel search. CityCode and CheckInDate are
// required; a missing CheckOutDate defaults to a three-night stay.
type HotelQuery struct {
	CityCode     string
	CheckInDate  string
	CheckOutDate string
	Adults       int
	Rooms        int
}

// FlightSearcher searches flight offers. Upstream failures never surface;
// the adapter substitutes deterministic mock offers instead. The only error
// returned is a ValidationError on missing required input.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, q FlightQuery) ([]models.FlightOffer, error)
}

// HotelSearcher searches hotel offers under the same failure contract as
// FlightSearcher.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, q HotelQuery) ([]models.HotelOffer, error)
}
