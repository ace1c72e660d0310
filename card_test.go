package fsrs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	id := uuid.New()
	c := NewCard(id)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, New, c.State)
	assert.Equal(t, time.Duration(0), c.Interval)
	assert.Equal(t, 0, c.Step)
	assert.Zero(t, c.Stability)
	assert.Zero(t, c.Difficulty)
}

func TestCardJSONRoundTrip(t *testing.T) {
	c := Card{
		ID:         uuid.MustParse("5b8e57a1-84f0-4c8e-9f6e-0a8f3b1d2c4e"),
		Interval:   17 * 24 * time.Hour,
		State:      Review,
		Step:       0,
		Stability:  17.3,
		Difficulty: 5.2,
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var got Card
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, c, got)
}

func TestCardJSONStateAsString(t *testing.T) {
	c := NewCard(uuid.New())
	c.State = Relearning

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Relearning"`)
}
