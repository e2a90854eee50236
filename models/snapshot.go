package models

import "time"

// PriceRange is an observed min/max price pair.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// FlightAggregates summarize the flight offers seen in a quick search.
type FlightAggregates struct {
	Airlines       []string `json:"airlines"`
	MinPrice       float64  `json:"minPrice"`
	MaxPrice       float64  `json:"maxPrice"`
	AvailableStops []int    `json:"availableStops"`
}

// HotelAggregates summarize the hotel offers seen in a quick search.
type HotelAggregates struct {
	PriceRanges []PriceRange `json:"priceRanges"`
}

// SnapshotAnalysis is derived purely from the aggregates of the same
// snapshot, including the follow-up questions offered to the user.
type SnapshotAnalysis struct {
	HasMultipleAirlines bool     `json:"hasMultipleAirlines"`
	HasMultipleStops    bool     `json:"hasMultipleStops"`
	HasFlexiblePricing  bool     `json:"hasFlexiblePricing"`
	HasHotelVariety     bool     `json:"hasHotelVariety"`
	SuggestedQuestions  []string `json:"suggestedQuestions"`
}

// QuickAvailabilitySnapshot is a point-in-time, non-authoritative preview of
// flight and hotel availability. Each new search replaces the previous
// snapshot wholesale; snapshots are never merged.
type QuickAvailabilitySnapshot struct {
	Flights            FlightAggregates `json:"flights"`
	Hotels             HotelAggregates  `json:"hotels"`
	ActivityCategories []string         `json:"activityCategories,omitempty"`
	Analysis           SnapshotAnalysis `json:"analysis"`
	GeneratedAt        time.Time        `json:"generatedAt"`
}
