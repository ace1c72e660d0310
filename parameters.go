package fsrs

import (
	"fmt"
	"math"
)

// DefaultParameters are the FSRS v6 default parameter values
// from py-fsrs / fsrs4anki Wiki FSRS-6.
var DefaultParameters = [21]float64{
	0.212, 1.2931, 2.3065, 8.2956, // w[0..3]  initial stability S₀(G)
	6.4133, 0.8334, 3.0194, 0.001, // w[4..7]  difficulty params
	1.8722, 0.1666, 0.796, 1.4835, // w[8..11] recall stability params
	0.0614, 0.2629, 1.6483, 0.6014, // w[12..15] forget stability params
	1.8729, 0.5425, 0.0912, 0.0658, // w[16..19] easy/short-term params
	0.1542, // w[20] decay exponent (v6 trainable)
}

// NormalizeParameters validates a weight vector and expands it to the
// canonical 21-element form used by all formulas.
//
// A 21-element vector is used as-is. A 19-element vector (FSRS-5, no
// trainable decay) is extended with [0, 0.5]. A 17-element vector (FSRS-4.5)
// is converted with the legacy transform
//
//	w[4] = w[5]*2 + w[4]
//	w[5] = ln(w[5]*3 + 1) / 3
//	w[6] = w[6] + 0.5
//
// and extended with [0, 0, 0, 0.5].
//
// Returns an error wrapping ErrInvalidParameters if any element is NaN or
// infinite, or ErrInvalidParameterCount for any other length.
func NormalizeParameters(w []float64) ([21]float64, error) {
	var out [21]float64
	for i, v := range w {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return out, fmt.Errorf("%w: w[%d] = %v", ErrInvalidParameters, i, v)
		}
	}

	switch len(w) {
	case 21:
		copy(out[:], w)
	case 19:
		copy(out[:], w)
		out[19] = 0.0
		out[20] = 0.5
	case 17:
		copy(out[:], w)
		out[4] = w[5]*2.0 + w[4]
		out[5] = math.Log(w[5]*3.0+1.0) / 3.0
		out[6] = w[6] + 0.5
		out[17], out[18], out[19] = 0.0, 0.0, 0.0
		out[20] = 0.5
	default:
		return out, fmt.Errorf("%w: got %d, want 17, 19, or 21", ErrInvalidParameterCount, len(w))
	}
	return out, nil
}
