package fsrs

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCardReturnsLog(t *testing.T) {
	s := mustScheduler(t, noFuzzCfg())
	card := NewCard(uuid.New())

	log := s.ReviewCard(&card, Good, 0)
	assert.Equal(t, card.ID, log.CardID)
	assert.Equal(t, Good, log.Rating)
	assert.Equal(t, time.Duration(0), log.Elapsed)
	assert.Nil(t, log.ReviewDuration)
}

func TestReviewLogJSONRoundTrip(t *testing.T) {
	dur := 2500
	rl := ReviewLog{
		CardID:         uuid.New(),
		Rating:         Hard,
		Elapsed:        3 * 24 * time.Hour,
		ReviewDuration: &dur,
	}

	data, err := json.Marshal(rl)
	require.NoError(t, err)

	var got ReviewLog
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, rl, got)
}

func TestReviewLogJSONOmitDuration(t *testing.T) {
	rl := ReviewLog{CardID: uuid.New(), Rating: Again}

	data, err := json.Marshal(rl)
	require.NoError(t, err)
	// ReviewDuration is omitempty — nil means field absent from JSON.
	assert.NotContains(t, string(data), "review_duration")
}

func TestReviewLogJSONRatingAsString(t *testing.T) {
	rl := ReviewLog{CardID: uuid.New(), Rating: Easy}

	data, err := json.Marshal(rl)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Easy"`)
}
