package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDateCanonicalUnchanged(t *testing.T) {
	assert.Equal(t, "2025-06-05", NormalizeDate("2025-06-05"))
	assert.Equal(t, "2025-07-08", NormalizeDate("2025-07-08"))
}

func TestNormalizeDateMonthNameFormats(t *testing.T) {
	assert.Equal(t, "2025-06-05", NormalizeDate("June 5, 2025"))
	assert.Equal(t, "2025-06-05", NormalizeDate("Jun 5, 2025"))
	assert.Equal(t, "2025-06-05", NormalizeDate("5 June 2025"))
}

func TestNormalizeDateMonthOnlyAssumesFirst(t *testing.T) {
	assert.Equal(t, "2025-06-01", NormalizeDate("June 2025"))
	assert.Equal(t, "2025-06-01", NormalizeDate("2025-06"))
}

func TestNormalizeDateUnparsedReturnsOriginal(t *testing.T) {
	assert.Equal(t, "next summer", NormalizeDate("next summer"))
	assert.Equal(t, "", NormalizeDate(""))
}
