package models

// TravelDates carries the canonical trip dates plus a free-form flexibility note.
type TravelDates struct {
	Departure   string `json:"departure,omitempty"`
	Return      string `json:"return,omitempty"`
	Flexibility string `json:"flexibility,omitempty"`
}

// FlightPrefs are the flight-side filters collected from conversation.
type FlightPrefs struct {
	Airlines []string `json:"airlines,omitempty"`
	Class    string   `json:"class,omitempty"`
	Direct   *bool    `json:"direct,omitempty"`
}

// AccommodationPrefs describe what kind of stay the traveler wants.
type AccommodationPrefs struct {
	Type      string   `json:"type,omitempty"`
	Amenities []string `json:"amenities,omitempty"`
	Location  string   `json:"location,omitempty"`
}

// ActivityPrefs capture activity interests and pacing.
type ActivityPrefs struct {
	Interests      []string `json:"interests,omitempty"`
	PacePreference string   `json:"pacePreference,omitempty"`
}

// BudgetPrefs hold the traveler's budget bounds.
type BudgetPrefs struct {
	Min      float64 `json:"min,omitempty"`
	Max      float64 `json:"max,omitempty"`
	Total    float64 `json:"total,omitempty"`
	Priority string  `json:"priority,omitempty"`
}

// TravelPreferences is the accumulating, partially-filled preference record
// owned by the conversation orchestrator. Fields only ever fill in or get
// overwritten by a newer non-empty value; an extraction that omits or blanks
// a field never erases what is already known.
type TravelPreferences struct {
	Origin          string             `json:"origin,omitempty"`
	OriginCode      string             `json:"originCode,omitempty"`
	Destination     string             `json:"destination,omitempty"`
	DestinationCode string             `json:"destinationCode,omitempty"`
	Dates           TravelDates        `json:"dates,omitempty"`
	Travelers       int                `json:"travelers,omitempty"`
	Flights         FlightPrefs        `json:"flights,omitempty"`
	Accommodation   AccommodationPrefs `json:"accommodation,omitempty"`
	Activities      ActivityPrefs      `json:"activities,omitempty"`
	Budget          BudgetPrefs        `json:"budget,omitempty"`
}

// LocationRef is the nested origin/destination shape returned by extraction.
type LocationRef struct {
	Name string `json:"name,omitempty"`
	Code string `json:"code,omitempty"`
}

// PreferenceDelta is a partial preferences object returned by the extraction
// step. Nil sub-structs mean "nothing learned about this area this turn".
type PreferenceDelta struct {
	Origin        *LocationRef        `json:"origin,omitempty"`
	Destination   *LocationRef        `json:"destination,omitempty"`
	Dates         *TravelDates        `json:"dates,omitempty"`
	Travelers     int                 `json:"travelers,omitempty"`
	Flights       *FlightPrefs        `json:"flights,omitempty"`
	Accommodation *AccommodationPrefs `json:"accommodation,omitempty"`
	Activities    *ActivityPrefs      `json:"activities,omitempty"`
	Budget        *BudgetPrefs        `json:"budget,omitempty"`
}

// pick returns next when it carries a value, otherwise keeps old. All merge
// rules below funnel through these so "never erase with empty" holds uniformly.
func pick(old, next string) string {
	if next != "" {
		return next
	}
	return old
}

func pickInt(old, next int) int {
	if next != 0 {
		return next
	}
	return old
}

func pickFloat(old, next float64) float64 {
	if next != 0 {
		return next
	}
	return old
}

func pickStrings(old, next []string) []string {
	if len(next) > 0 {
		return next
	}
	return old
}

// Merge folds an extraction delta into the running preferences. The nested
// origin/destination refs are flattened onto origin/originCode and
// destination/destinationCode.
func (p *TravelPreferences) Merge(d PreferenceDelta) {
	if d.Origin != nil {
		p.Origin = pick(p.Origin, d.Origin.Name)
		p.OriginCode = pick(p.OriginCode, d.Origin.Code)
	}
	if d.Destination != nil {
		p.Destination = pick(p.Destination, d.Destination.Name)
		p.DestinationCode = pick(p.DestinationCode, d.Destination.Code)
	}
	if d.Dates != nil {
		p.Dates.Departure = pick(p.Dates.Departure, d.Dates.Departure)
		p.Dates.Return = pick(p.Dates.Return, d.Dates.Return)
		p.Dates.Flexibility = pick(p.Dates.Flexibility, d.Dates.Flexibility)
	}
	p.Travelers = pickInt(p.Travelers, d.Travelers)
	if d.Flights != nil {
		p.Flights.Airlines = pickStrings(p.Flights.Airlines, d.Flights.Airlines)
		p.Flights.Class = pick(p.Flights.Class, d.Flights.Class)
		if d.Flights.Direct != nil {
			p.Flights.Direct = d.Flights.Direct
		}
	}
	if d.Accommodation != nil {
		p.Accommodation.Type = pick(p.Accommodation.Type, d.Accommodation.Type)
		p.Accommodation.Amenities = pickStrings(p.Accommodation.Amenities, d.Accommodation.Amenities)
		p.Accommodation.Location = pick(p.Accommodation.Location, d.Accommodation.Location)
	}
	if d.Activities != nil {
		p.Activities.Interests = pickStrings(p.Activities.Interests, d.Activities.Interests)
		p.Activities.PacePreference = pick(p.Activities.PacePreference, d.Activities.PacePreference)
	}
	if d.Budget != nil {
		p.Budget.Min = pickFloat(p.Budget.Min, d.Budget.Min)
		p.Budget.Max = pickFloat(p.Budget.Max, d.Budget.Max)
		p.Budget.Total = pickFloat(p.Budget.Total, d.Budget.Total)
		p.Budget.Priority = pick(p.Budget.Priority, d.Budget.Priority)
	}
}
