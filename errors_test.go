package fsrs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidRating,
		ErrInvalidParameters,
		ErrInvalidParameterCount,
		ErrCardIDMismatch,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
		}
	}
}

func TestSentinelErrorsPrefixed(t *testing.T) {
	for _, err := range []error{
		ErrInvalidRating,
		ErrInvalidParameters,
		ErrInvalidParameterCount,
		ErrCardIDMismatch,
	} {
		assert.Contains(t, err.Error(), "fsrs: ")
	}
}
