package models

// OptionType classifies a selectable travel option.
type OptionType string

const (
	OptionFlight    OptionType = "flight"
	OptionHotel     OptionType = "hotel"
	OptionActivity  OptionType = "activity"
	OptionTransport OptionType = "transport"
)

// FlightSegment is one leg of an itinerary, preserved for detail display.
type FlightSegment struct {
	DepartureAirport string `json:"departureAirport"`
	DepartureTime    string `json:"departureTime"`
	ArrivalAirport   string `json:"arrivalAirport"`
	ArrivalTime      string `json:"arrivalTime"`
	Carrier          string `json:"carrier"`
	FlightNumber     string `json:"flightNumber"`
	Duration         string `json:"duration"`
}

// FlightOptionDetails is the rich payload attached to flight options.
type FlightOptionDetails struct {
	Segments []FlightSegment `json:"segments"`
	Stops    string          `json:"stops"`
	TripType string          `json:"tripType"`
	Cabin    string          `json:"cabin,omitempty"`
}

// HotelOptionDetails is the rich payload attached to hotel options.
type HotelOptionDetails struct {
	Address   string   `json:"address,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
}

// ActivityOptionDetails is the rich payload attached to activity options.
type ActivityOptionDetails struct {
	Brief    string `json:"brief,omitempty"`
	Category string `json:"category,omitempty"`
}

// TravelOption is one unified selectable unit presented to the swipe UI.
// IDs are type-prefixed (flight-, hotel-, activity-) and unique within a
// generated list. Options are immutable once created; the UI only tags
// accept/reject on its side.
type TravelOption struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	ImageSrc    string      `json:"imageSrc"`
	Type        OptionType  `json:"type"`
	Price       float64     `json:"price,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	Time        string      `json:"time,omitempty"`
	Duration    string      `json:"duration,omitempty"`
	Location    string      `json:"location,omitempty"`
	Details     interface{} `json:"details,omitempty"`
}
