package options

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeISODuration(t *testing.T) {
	assert.Equal(t, "7h 30m", humanizeISODuration("PT7H30M"))
	assert.Equal(t, "45m", humanizeISODuration("PT45M"))
	assert.Equal(t, "8h", humanizeISODuration("PT8H"))
}

func TestHumanizeISODurationMalformed(t *testing.T) {
	assert.Equal(t, "7 hours", humanizeISODuration("7 hours"))
	assert.Equal(t, "PT", humanizeISODuration("PT"))
	assert.Equal(t, "", humanizeISODuration(""))
	assert.Equal(t, "PTXHYM", humanizeISODuration("PTXHYM"))
}

func TestStopsLabel(t *testing.T) {
	assert.Equal(t, "Nonstop", stopsLabel(0))
	assert.Equal(t, "1 stop", stopsLabel(1))
	assert.Equal(t, "2 stops", stopsLabel(2))
}

func TestTripTypeLabel(t *testing.T) {
	assert.Equal(t, "One-way", tripTypeLabel(""))
	assert.Equal(t, "Round-trip", tripTypeLabel("2025-07-08"))
}
