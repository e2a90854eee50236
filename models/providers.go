package models

// FlightOffer is the normalized record produced by the flight-search adapter.
// Duration fields stay in ISO-8601 form (PT7H30M); the option formatter owns
// the human-readable rendering.
type FlightOffer struct {
	ID          string          `json:"id"`
	Price       float64         `json:"price"`
	Currency    string          `json:"currency,omitempty"`
	Airline     string          `json:"airline"`
	AirlineCode string          `json:"airlineCode,omitempty"`
	Stops       int             `json:"stops"`
	Duration    string          `json:"duration"`
	Segments    []FlightSegment `json:"segments"`
	ReturnTrip  bool            `json:"returnTrip,omitempty"`
}

// HotelOffer is the normalized record produced by the hotel-search adapter.
// NightlyPrice is per night, already divided out from the stay total.
type HotelOffer struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Address      string   `json:"address,omitempty"`
	Location     string   `json:"location"`
	NightlyPrice float64  `json:"nightlyPrice"`
	Currency     string   `json:"currency,omitempty"`
	Rating       float64  `json:"rating"`
	Amenities    []string `json:"amenities,omitempty"`
}

// ActivitySuggestion is one AI-suggested activity before image resolution.
type ActivitySuggestion struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Brief       string  `json:"brief"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	Price       float64 `json:"price,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// ImageResult is one record returned by the image-search adapter.
type ImageResult struct {
	ID   string            `json:"id"`
	URLs map[string]string `json:"urls"`
	Alt  string            `json:"alt,omitempty"`
}
