package fsrs

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog records a single review event for a card. Elapsed is the time
// between the previous review and this one, as passed to ReviewCard;
// replaying a card's logs in order through RescheduleCard rebuilds its
// scheduling state.
type ReviewLog struct {
	CardID         uuid.UUID     `json:"card_id"`
	Rating         Rating        `json:"rating"`
	Elapsed        time.Duration `json:"elapsed"`
	ReviewDuration *int          `json:"review_duration,omitempty"` // milliseconds, optional.
}
