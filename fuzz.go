package fsrs

import (
	"math"
	"time"
)

type fuzzRange struct {
	start, end float64
	factor     float64
}

var fuzzRanges = []fuzzRange{
	{2.5, 7.0, 0.15},
	{7.0, 20.0, 0.10},
	{20.0, math.Inf(1), 0.05},
}

// fuzzDelta computes the fuzz spread for an interval of the given length.
// delta = Σ factor * max(0, min(days, end) - start) over the three bands.
func fuzzDelta(days float64) float64 {
	var delta float64
	for _, r := range fuzzRanges {
		delta += r.factor * math.Max(0.0, math.Min(days, r.end)-r.start)
	}
	return delta
}

// fuzzedInterval randomizes a review interval to prevent review-date
// clustering across many cards. Intervals shorter than 2.5 days pass
// through unchanged. The fuzzed value is drawn uniformly from
// [max(2, round(days-delta)), round(days+delta)] inclusive, then capped
// at maxInterval.
func fuzzedInterval(rng *lockedRand, interval time.Duration, maxInterval int) time.Duration {
	days := interval.Hours() / 24.0
	if days < 2.5 {
		return interval
	}

	delta := fuzzDelta(days)
	minIvl := int(math.Round(days - delta))
	if minIvl < 2 {
		minIvl = 2
	}
	maxIvl := int(math.Round(days + delta))
	if maxIvl < minIvl {
		maxIvl = minIvl
	}

	fuzzed := minIvl + rng.Intn(maxIvl-minIvl+1)
	if fuzzed > maxInterval {
		fuzzed = maxInterval
	}
	return daysToDuration(fuzzed)
}
