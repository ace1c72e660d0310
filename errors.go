package fsrs

import "errors"

// Sentinel errors for the fsrs package.
// Use errors.Is to check: errors.Is(err, fsrs.ErrInvalidParameters)
var (
	ErrInvalidRating         = errors.New("fsrs: invalid rating")
	ErrInvalidParameters     = errors.New("fsrs: parameters contain non-finite values")
	ErrInvalidParameterCount = errors.New("fsrs: invalid parameter count")
	ErrCardIDMismatch        = errors.New("fsrs: card ID mismatch in review log")
)
