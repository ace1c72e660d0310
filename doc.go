// Package fsrs implements the FSRS v6 spaced repetition scheduling algorithm.
//
// fsrs provides a pure-Go Scheduler for computing optimal review intervals
// from a quantitative memory model (stability, difficulty, retrievability).
// The caller owns card storage; the Scheduler only decides how far out the
// next review of a single card should be.
//
// Basic usage:
//
//	s, err := fsrs.NewScheduler(fsrs.SchedulerConfig{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	card := fsrs.NewCard(uuid.New())
//	s.ReviewCard(&card, fsrs.Good, 0)
//	fmt.Println(card.Interval)
package fsrs
