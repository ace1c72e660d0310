package fsrs

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"
)

const dayDuration = 24 * time.Hour

// maxDurationDays is the largest whole-day count that fits in a
// time.Duration (int64 nanoseconds), about 292 years.
const maxDurationDays = math.MaxInt64 / int64(dayDuration)

// daysToDuration converts whole days to a time.Duration, saturating at
// maxDurationDays instead of wrapping negative.
func daysToDuration(days int) time.Duration {
	if int64(days) > maxDurationDays {
		days = int(maxDurationDays)
	}
	return time.Duration(days) * dayDuration
}

// SchedulerConfig configures a Scheduler.
// Zero values produce sensible defaults; see field comments.
type SchedulerConfig struct {
	Parameters       []float64       `json:"parameters"`        // nil → DefaultParameters; length 17, 19, or 21
	DesiredRetention float64         `json:"desired_retention"` // zero → 0.9
	LearningSteps    []time.Duration `json:"learning_steps"`    // nil → [1m, 10m]; empty → no steps
	RelearningSteps  []time.Duration `json:"relearning_steps"`  // nil → [10m]; empty → no steps
	MaximumInterval  int             `json:"maximum_interval"`  // zero → 36500
	DisableFuzzing   bool            `json:"disable_fuzzing"`   // zero false → fuzz enabled
	FuzzSeed         int64           `json:"fuzz_seed"`         // zero → time-seeded
}

// Scheduler schedules card reviews using the FSRS v6 algorithm.
//
// A Scheduler is safe for concurrent use: the memory-model math reads only
// its precomputed parameters and the card passed to it, and the fuzzing
// generator is serialized internally.
type Scheduler struct {
	algo             algo
	desiredRetention float64
	learningSteps    []time.Duration
	relearningSteps  []time.Duration
	maximumInterval  int
	disableFuzzing   bool
	fuzzSeed         int64
	rng              *lockedRand
}

// lockedRand serializes access to a shared pseudo-random source.
type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

func newLockedRand(seed int64) *lockedRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (lr *lockedRand) Intn(n int) int {
	lr.mu.Lock()
	defer lr.mu.Unlock()
	return lr.r.Intn(n)
}

// NewScheduler creates a Scheduler from the given config.
// Zero-value fields are filled with defaults. The weight vector is
// normalized once at construction: it fails with an error wrapping
// ErrInvalidParameters if any weight is non-finite, or
// ErrInvalidParameterCount if the length is not 17, 19, or 21.
func NewScheduler(cfg SchedulerConfig) (*Scheduler, error) {
	// Parameters: nil → defaults.
	params := cfg.Parameters
	if params == nil {
		params = DefaultParameters[:]
	}
	w, err := NormalizeParameters(params)
	if err != nil {
		return nil, err
	}

	// DesiredRetention: zero → 0.9.
	dr := cfg.DesiredRetention
	if dr == 0 {
		dr = 0.9
	}
	if dr < 0 || dr > 1 {
		return nil, fmt.Errorf("fsrs: desired retention %f out of range (0, 1]", dr)
	}

	// MaximumInterval: zero → 36500.
	maxIvl := cfg.MaximumInterval
	if maxIvl == 0 {
		maxIvl = 36500
	}
	if maxIvl < 0 {
		return nil, fmt.Errorf("fsrs: maximum interval %d must be positive", maxIvl)
	}

	// LearningSteps: nil → defaults.
	ls := cfg.LearningSteps
	if ls == nil {
		ls = []time.Duration{time.Minute, 10 * time.Minute}
	}

	// RelearningSteps: nil → defaults.
	rs := cfg.RelearningSteps
	if rs == nil {
		rs = []time.Duration{10 * time.Minute}
	}

	return &Scheduler{
		algo:             newAlgo(w),
		desiredRetention: dr,
		learningSteps:    ls,
		relearningSteps:  rs,
		maximumInterval:  maxIvl,
		disableFuzzing:   cfg.DisableFuzzing,
		fuzzSeed:         cfg.FuzzSeed,
		rng:              newLockedRand(cfg.FuzzSeed),
	}, nil
}

// Parameters returns the normalized 21-element weight vector.
func (s *Scheduler) Parameters() [21]float64 {
	return s.algo.w
}

// ReviewCard processes a review of the card graded with rating, elapsed
// time after its previous review (zero for the first review). The card is
// mutated in place: stability and difficulty are updated from the memory
// model, the state machine advances, and the new interval is set. It never
// fails on a validly constructed Scheduler.
//
// The returned ReviewLog records the event for later replay.
func (s *Scheduler) ReviewCard(card *Card, rating Rating, elapsed time.Duration) ReviewLog {
	s.updateMemory(card, rating, elapsed)
	s.advance(card, rating)

	// Fuzz only applies to cards that ended up in Review.
	if !s.disableFuzzing && card.State == Review {
		card.Interval = fuzzedInterval(s.rng, card.Interval, s.maximumInterval)
	}

	return ReviewLog{
		CardID:  card.ID,
		Rating:  rating,
		Elapsed: elapsed,
	}
}

// PreviewCard returns the result of reviewing the card with each possible
// rating, leaving the card itself untouched.
func (s *Scheduler) PreviewCard(card Card, elapsed time.Duration) map[Rating]Card {
	result := make(map[Rating]Card, 4)
	for _, r := range []Rating{Again, Hard, Good, Easy} {
		c := card
		s.ReviewCard(&c, r, elapsed)
		result[r] = c
	}
	return result
}

// RescheduleCard replays the given review logs in order to rebuild the
// card's scheduling state. Returns an error wrapping ErrCardIDMismatch if
// any log belongs to a different card.
func (s *Scheduler) RescheduleCard(card *Card, logs []ReviewLog) error {
	for _, l := range logs {
		if l.CardID != card.ID {
			return fmt.Errorf("%w: card %s, log %s", ErrCardIDMismatch, card.ID, l.CardID)
		}
		s.ReviewCard(card, l.Rating, l.Elapsed)
	}
	return nil
}

// Retrievability returns the predicted probability of recall for the card
// after the given elapsed time since its last review. Returns 0 for a card
// that has never been reviewed.
func (s *Scheduler) Retrievability(card Card, elapsed time.Duration) float64 {
	if card.State == New || card.Stability <= 0 {
		return 0
	}
	return s.algo.retrievability(elapsedDays(elapsed), card.Stability)
}

// NextReviewInterval returns the unfuzzed interval that brings predicted
// retrievability down to the configured desired retention, clamped to
// [1 day, MaximumInterval]. Day counts beyond what a time.Duration can
// hold (about 292 years) saturate; use NextReviewIntervalDays for the
// exact value.
func (s *Scheduler) NextReviewInterval(stability float64) time.Duration {
	return daysToDuration(s.NextReviewIntervalDays(stability))
}

// NextReviewIntervalDays returns the same interval as NextReviewInterval
// in whole days, exact for any MaximumInterval.
func (s *Scheduler) NextReviewIntervalDays(stability float64) int {
	return s.algo.nextInterval(stability, s.desiredRetention, s.maximumInterval)
}

// updateMemory updates the card's stability and difficulty from the review.
// A New card gets its initial estimates and moves to Learning; otherwise
// same-day reviews take the short-term path and cross-day reviews the
// forgetting-curve path.
func (s *Scheduler) updateMemory(card *Card, rating Rating, elapsed time.Duration) {
	if card.State == New {
		card.Stability = s.algo.initStability(rating)
		card.Difficulty = s.algo.initDifficulty(rating)
		card.State = Learning
		card.Step = 0
		return
	}

	difficulty := s.algo.nextDifficulty(card.Difficulty, rating)
	var stability float64
	if elapsed < dayDuration {
		stability = s.algo.shortTermStability(card.Stability, rating)
	} else {
		r := s.algo.retrievability(elapsedDays(elapsed), card.Stability)
		stability = s.algo.nextStability(card.Difficulty, card.Stability, r, rating)
	}

	card.Stability = stability
	card.Difficulty = difficulty
}

// advance applies the state machine and sets the card's next interval.
func (s *Scheduler) advance(card *Card, rating Rating) {
	switch card.State {
	case Learning:
		s.applySteps(card, rating, s.learningSteps)
	case Relearning:
		s.applySteps(card, rating, s.relearningSteps)
	case Review:
		if rating == Again && len(s.relearningSteps) > 0 {
			card.State = Relearning
			card.Step = 0
			card.Interval = s.relearningSteps[0]
			return
		}
		s.toReview(card)
	}
}

// applySteps handles a card inside a learning or relearning step sequence.
func (s *Scheduler) applySteps(card *Card, rating Rating, steps []time.Duration) {
	if len(steps) == 0 {
		s.toReview(card)
		return
	}

	switch rating {
	case Again:
		card.State = Learning
		card.Step = 0
		card.Interval = steps[0]

	case Hard:
		card.Interval = hardStepInterval(card.Step, steps)

	case Good:
		next := card.Step + 1
		if next >= len(steps) {
			s.toReview(card)
			return
		}
		card.State = Learning
		card.Step = next
		card.Interval = steps[next]

	case Easy:
		s.toReview(card)
	}
}

// hardStepInterval returns the interval for a Hard rating within steps.
// At step 0 with a single configured step: 1.5× that step. At step 0 with
// two or more: the average of the first two. Otherwise the current step
// repeats without advancing.
func hardStepInterval(step int, steps []time.Duration) time.Duration {
	if step == 0 && len(steps) == 1 {
		return time.Duration(1.5 * float64(steps[0]))
	}
	if step == 0 && len(steps) > 1 {
		return (steps[0] + steps[1]) / 2
	}
	if step >= len(steps) {
		step = len(steps) - 1
	}
	return steps[step]
}

// toReview transitions the card into the Review state with an interval
// derived from its stability.
func (s *Scheduler) toReview(card *Card) {
	card.State = Review
	card.Step = 0
	card.Interval = s.NextReviewInterval(card.Stability)
}

// elapsedDays converts an elapsed duration to fractional days, floored at 0.
func elapsedDays(elapsed time.Duration) float64 {
	d := elapsed.Hours() / 24.0
	if d < 0 {
		return 0
	}
	return d
}

// schedulerJSON is the serialized form of a Scheduler.
type schedulerJSON struct {
	Parameters       []float64 `json:"parameters"`
	DesiredRetention float64   `json:"desired_retention"`
	LearningSteps    []int64   `json:"learning_steps"`   // nanoseconds
	RelearningSteps  []int64   `json:"relearning_steps"` // nanoseconds
	MaximumInterval  int       `json:"maximum_interval"`
	DisableFuzzing   bool      `json:"disable_fuzzing"`
	FuzzSeed         int64     `json:"fuzz_seed"`
}

// MarshalJSON implements json.Marshaler. The serialized form carries the
// normalized 21-element weight vector.
func (s *Scheduler) MarshalJSON() ([]byte, error) {
	j := schedulerJSON{
		Parameters:       s.algo.w[:],
		DesiredRetention: s.desiredRetention,
		LearningSteps:    durationsToNanos(s.learningSteps),
		RelearningSteps:  durationsToNanos(s.relearningSteps),
		MaximumInterval:  s.maximumInterval,
		DisableFuzzing:   s.disableFuzzing,
		FuzzSeed:         s.fuzzSeed,
	}
	return json.Marshal(j)
}

// UnmarshalJSON implements json.Unmarshaler.
// It rebuilds the internal precomputed state from the serialized config.
func (s *Scheduler) UnmarshalJSON(data []byte) error {
	var j schedulerJSON
	if err := json.Unmarshal(data, &j); err != nil {
		return err
	}
	rebuilt, err := NewScheduler(SchedulerConfig{
		Parameters:       j.Parameters,
		DesiredRetention: j.DesiredRetention,
		LearningSteps:    nanosToDurations(j.LearningSteps),
		RelearningSteps:  nanosToDurations(j.RelearningSteps),
		MaximumInterval:  j.MaximumInterval,
		DisableFuzzing:   j.DisableFuzzing,
		FuzzSeed:         j.FuzzSeed,
	})
	if err != nil {
		return err
	}
	*s = *rebuilt
	return nil
}

func durationsToNanos(ds []time.Duration) []int64 {
	ns := make([]int64, len(ds))
	for i, d := range ds {
		ns[i] = int64(d)
	}
	return ns
}

func nanosToDurations(ns []int64) []time.Duration {
	if ns == nil {
		return nil
	}
	ds := make([]time.Duration, len(ns))
	for i, n := range ns {
		ds[i] = time.Duration(n)
	}
	return ds
}
