package intelligence

import (
	"context"
	"testing"

	"wayfare/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockActivitiesDeterministic(t *testing.T) {
	first := MockActivities("Bordeaux")
	second := MockActivities("Bordeaux")

	require.Len(t, first, 4)
	assert.Equal(t, first, second)
}

func TestMockActivitiesMentionDestination(t *testing.T) {
	for _, a := range MockActivities("Bordeaux") {
		assert.Contains(t, a.Description, "Bordeaux")
		assert.NotEmpty(t, a.ID)
		assert.NotEmpty(t, a.Brief)
	}
}

// Without an API key the service must still produce suggestions.
func TestSuggestActivitiesFallsBackWithoutKey(t *testing.T) {
	svc := NewGeminiService("")
	suggestions := svc.SuggestActivities(context.Background(), models.TravelPreferences{Destination: "Bordeaux"})
	assert.Equal(t, MockActivities("Bordeaux"), suggestions)
}

func TestStripCodeFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripCodeFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripCodeFences(`{"a":1}`))
}
