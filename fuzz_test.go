package fsrs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFuzzDeltaSingleBand(t *testing.T) {
	// interval=3 → only the [2.5, 7) band: 0.15 * (3 - 2.5) = 0.075
	assert.InDelta(t, 0.075, fuzzDelta(3.0), epsilon)
}

func TestFuzzDeltaTwoBands(t *testing.T) {
	// interval=10 → [2.5,7) full + [7,20) partial
	// band1: 0.15 * (7 - 2.5) = 0.675
	// band2: 0.10 * (10 - 7)  = 0.3
	assert.InDelta(t, 0.975, fuzzDelta(10.0), epsilon)
}

func TestFuzzDeltaThreeBands(t *testing.T) {
	// interval=50 → all three bands
	// band1: 0.15 * (7 - 2.5)  = 0.675
	// band2: 0.10 * (20 - 7)   = 1.3
	// band3: 0.05 * (50 - 20)  = 1.5
	assert.InDelta(t, 3.475, fuzzDelta(50.0), epsilon)
}

func TestFuzzDeltaBelowFirstBand(t *testing.T) {
	assert.InDelta(t, 0.0, fuzzDelta(2.0), epsilon)
}

func TestFuzzedIntervalSmallIntervalUnchanged(t *testing.T) {
	rng := newLockedRand(42)
	// Below 2.5 days fuzz is a no-op.
	for _, d := range []time.Duration{dayDuration, 2 * dayDuration, 36 * time.Hour} {
		assert.Equal(t, d, fuzzedInterval(rng, d, 36500))
	}
}

func TestFuzzedIntervalWithinBounds(t *testing.T) {
	rng := newLockedRand(42)
	// interval=10, delta=0.975
	// bounds: [max(2, round(9.025)), round(10.975)] = [9, 11]
	for i := 0; i < 200; i++ {
		got := fuzzedInterval(rng, 10*dayDuration, 36500)
		days := int(got / dayDuration)
		assert.GreaterOrEqual(t, days, 9)
		assert.LessOrEqual(t, days, 11)
	}
}

func TestFuzzedIntervalDegenerateRange(t *testing.T) {
	rng := newLockedRand(42)
	// interval=3, delta=0.075 → bounds [round(2.925), round(3.075)] = [3, 3]
	for i := 0; i < 50; i++ {
		assert.Equal(t, 3*dayDuration, fuzzedInterval(rng, 3*dayDuration, 36500))
	}
}

func TestFuzzedIntervalLowerFloor(t *testing.T) {
	rng := newLockedRand(7)
	// The fuzzed lower bound never drops below 2 days.
	for i := 0; i < 200; i++ {
		for _, ivl := range []time.Duration{3 * dayDuration, 4 * dayDuration, 5 * dayDuration} {
			days := int(fuzzedInterval(rng, ivl, 36500) / dayDuration)
			assert.GreaterOrEqual(t, days, 2)
		}
	}
}

func TestFuzzedIntervalMaxIntervalCap(t *testing.T) {
	rng := newLockedRand(42)
	// interval=50, maxInterval=48: delta=3.475 → [47, 53], capped at 48.
	for i := 0; i < 200; i++ {
		days := int(fuzzedInterval(rng, 50*dayDuration, 48) / dayDuration)
		assert.GreaterOrEqual(t, days, 47)
		assert.LessOrEqual(t, days, 48)
	}
}

func TestFuzzedIntervalReproducible(t *testing.T) {
	rng1 := newLockedRand(123)
	rng2 := newLockedRand(123)
	for i := 0; i < 20; i++ {
		a := fuzzedInterval(rng1, 15*dayDuration, 36500)
		b := fuzzedInterval(rng2, 15*dayDuration, 36500)
		assert.Equal(t, a, b, "iteration %d", i)
	}
}
