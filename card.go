package fsrs

import (
	"time"

	"github.com/google/uuid"
)

// Card holds the scheduling state of a single learning item. The Scheduler
// mutates it in place on every review; the caller owns persistence.
//
// Stability and Difficulty are zero until the first review. Step is only
// meaningful while State is Learning or Relearning.
type Card struct {
	ID         uuid.UUID     `json:"id"`
	Interval   time.Duration `json:"interval"`
	State      State         `json:"state"`
	Step       int           `json:"step"`
	Stability  float64       `json:"stability"`
	Difficulty float64       `json:"difficulty"`
}

// NewCard creates a card in the New state with a zero interval.
func NewCard(id uuid.UUID) Card {
	return Card{ID: id}
}
