package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeNeverErasesWithEmpty(t *testing.T) {
	prefs := TravelPreferences{
		Origin:     "Miami",
		OriginCode: "MIA",
		Dates:      TravelDates{Departure: "2025-06-05"},
		Travelers:  2,
	}

	// A turn about the destination only: origin comes back empty.
	prefs.Merge(PreferenceDelta{
		Origin:      &LocationRef{},
		Destination: &LocationRef{Name: "Paris", Code: "PAR"},
	})

	assert.Equal(t, "Miami", prefs.Origin)
	assert.Equal(t, "MIA", prefs.OriginCode)
	assert.Equal(t, "Paris", prefs.Destination)
	assert.Equal(t, "PAR", prefs.DestinationCode)
	assert.Equal(t, "2025-06-05", prefs.Dates.Departure)
	assert.Equal(t, 2, prefs.Travelers)
}

func TestMergeNilSubStructsAreNoOps(t *testing.T) {
	prefs := TravelPreferences{
		Origin:      "Miami",
		Destination: "Bordeaux",
		Budget:      BudgetPrefs{Max: 3000},
	}

	prefs.Merge(PreferenceDelta{})

	assert.Equal(t, "Miami", prefs.Origin)
	assert.Equal(t, "Bordeaux", prefs.Destination)
	assert.Equal(t, 3000.0, prefs.Budget.Max)
}

func TestMergeNewValuesOverwrite(t *testing.T) {
	prefs := TravelPreferences{
		Destination:     "Bordeaux",
		DestinationCode: "BOD",
	}

	prefs.Merge(PreferenceDelta{
		Destination: &LocationRef{Name: "Rome", Code: "ROM"},
		Dates:       &TravelDates{Departure: "2025-09-12", Return: "2025-09-19"},
		Travelers:   3,
	})

	assert.Equal(t, "Rome", prefs.Destination)
	assert.Equal(t, "ROM", prefs.DestinationCode)
	assert.Equal(t, "2025-09-12", prefs.Dates.Departure)
	assert.Equal(t, 3, prefs.Travelers)
}

func TestMergeDirectFlagIsTriState(t *testing.T) {
	direct := true
	prefs := TravelPreferences{}

	prefs.Merge(PreferenceDelta{Flights: &FlightPrefs{Direct: &direct}})
	assert.NotNil(t, prefs.Flights.Direct)
	assert.True(t, *prefs.Flights.Direct)

	// An explicit false is new information, not an empty value.
	notDirect := false
	prefs.Merge(PreferenceDelta{Flights: &FlightPrefs{Direct: &notDirect}})
	assert.NotNil(t, prefs.Flights.Direct)
	assert.False(t, *prefs.Flights.Direct)

	// A delta silent on directness leaves the decision alone.
	prefs.Merge(PreferenceDelta{Flights: &FlightPrefs{Class: "economy"}})
	assert.NotNil(t, prefs.Flights.Direct)
	assert.False(t, *prefs.Flights.Direct)
	assert.Equal(t, "economy", prefs.Flights.Class)
}

func TestMergeListAndBudgetFields(t *testing.T) {
	prefs := TravelPreferences{
		Activities: ActivityPrefs{Interests: []string{"food"}},
	}

	prefs.Merge(PreferenceDelta{
		Activities: &ActivityPrefs{Interests: []string{"wine", "history"}},
		Budget:     &BudgetPrefs{Min: 500, Priority: "comfort"},
	})
	assert.Equal(t, []string{"wine", "history"}, prefs.Activities.Interests)
	assert.Equal(t, 500.0, prefs.Budget.Min)
	assert.Equal(t, "comfort", prefs.Budget.Priority)

	// Empty lists never clobber earlier interests.
	prefs.Merge(PreferenceDelta{Activities: &ActivityPrefs{PacePreference: "relaxed"}})
	assert.Equal(t, []string{"wine", "history"}, prefs.Activities.Interests)
	assert.Equal(t, "relaxed", prefs.Activities.PacePreference)
}
