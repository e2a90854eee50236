package models

import "time"

// TripState is the conversation orchestrator's explicit state machine. One
// current-state value replaces the scattered boolean flags a naive
// implementation would accumulate.
type TripState string

const (
	StateIdle                TripState = "idle"
	StateAwaitingPreferences TripState = "awaiting_preferences"
	StateQuickSearchInFlight TripState = "quick_search_in_flight"
	StateRefinementOffered   TripState = "refinement_offered"
	StateGeneratingOptions   TripState = "generating_options"
	StateOptionsReady        TripState = "options_ready"
)

// TripSession is the per-session conversation state: running preferences,
// the append-only transcript, the current availability snapshot and the FSM
// position. It is owned exclusively by the conversation orchestrator.
type TripSession struct {
	ID          string             `json:"id"`
	State       TripState          `json:"state"`
	Preferences TravelPreferences  `json:"preferences"`
	Transcript  []ChatMessage      `json:"transcript"`
	Snapshot    *QuickAvailabilitySnapshot `json:"snapshot,omitempty"`

	// RefinementOffered is the one-shot gate: the "show travel options"
	// action is attached at most once per snapshot.
	RefinementOffered bool `json:"refinementOffered"`

	// LastSearchedDestination records which destination the current
	// snapshot was built for, so a destination change retriggers search.
	LastSearchedDestination string `json:"lastSearchedDestination,omitempty"`

	Options   []TravelOption `json:"options,omitempty"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// NewTripSession returns a fresh session in the idle state.
func NewTripSession(id string) *TripSession {
	return &TripSession{
		ID:        id,
		State:     StateIdle,
		UpdatedAt: time.Now().UTC(),
	}
}
