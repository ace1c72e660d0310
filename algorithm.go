package fsrs

import "math"

// Clamp bounds for the memory model.
const (
	// StabilityMin is the floor for every stability value, in days.
	StabilityMin = 0.001
	// MinDifficulty and MaxDifficulty bound the difficulty scale.
	MinDifficulty = 1.0
	MaxDifficulty = 10.0
)

// algo holds precomputed constants derived from the 21 FSRS parameters.
type algo struct {
	w      [21]float64
	decay  float64 // -w[20]
	factor float64 // 0.9^(1/decay) - 1
}

// newAlgo creates an algo with precomputed decay and factor.
func newAlgo(w [21]float64) algo {
	decay := -w[20]
	factor := math.Pow(0.9, 1.0/decay) - 1.0
	return algo{w: w, decay: decay, factor: factor}
}

// retrievability computes R(t, S) = (1 + FACTOR * t / S) ^ DECAY,
// the predicted probability of recall after elapsedDays.
func (a *algo) retrievability(elapsedDays, stability float64) float64 {
	return math.Pow(1.0+a.factor*elapsedDays/stability, a.decay)
}

// initStability returns the initial stability S₀(G) = clamp_s(w[G-1]).
func (a *algo) initStability(r Rating) float64 {
	return clampS(a.w[r-1])
}

// rawInitDifficulty returns D₀(G) = w[4] - e^(w[5]*(G-1)) + 1, unclamped.
// The unclamped Easy value is the mean-reversion target in nextDifficulty.
func (a *algo) rawInitDifficulty(r Rating) float64 {
	return a.w[4] - math.Exp(a.w[5]*float64(r-1)) + 1.0
}

// initDifficulty returns the initial difficulty D₀(G), clamped to [1, 10].
func (a *algo) initDifficulty(r Rating) float64 {
	return clampD(a.rawInitDifficulty(r))
}

// nextInterval computes the next review interval in days.
// I(r, S) = round((S / FACTOR) * (r^(1/DECAY) - 1)), clamped to [1, maxIvl].
// This inverts retrievability: after I days predicted recall equals r.
func (a *algo) nextInterval(stability, desiredRetention float64, maxIvl int) int {
	ivl := stability / a.factor * (math.Pow(desiredRetention, 1.0/a.decay) - 1.0)
	days := int(math.Round(ivl))
	if days < 1 {
		days = 1
	}
	if days > maxIvl {
		days = maxIvl
	}
	return days
}

// shortTermStability computes the same-day review stability.
// SInc = e^(w[17] * (G - 3 + w[18])) * S^(-w[19])
// If G ∈ {Good, Easy}: SInc = max(SInc, 1.0). The floor does not apply to
// Hard: a same-day Hard review may still shrink stability.
// S' = clamp_s(S * SInc)
func (a *algo) shortTermStability(stability float64, r Rating) float64 {
	sInc := math.Exp(a.w[17]*(float64(r)-3.0+a.w[18])) * math.Pow(stability, -a.w[19])
	if r == Good || r == Easy {
		sInc = math.Max(sInc, 1.0)
	}
	return clampS(stability * sInc)
}

// nextDifficulty computes the updated difficulty after a review.
// ΔD = -w[6] * (G - 3)
// D' = D + (10 - D) * ΔD / 9          (linear damping toward the ceiling)
// D'' = w[7]*D₀(Easy) + (1-w[7])*D'   (mean reversion, unclamped target)
// clamped to [1, 10]
func (a *algo) nextDifficulty(difficulty float64, r Rating) float64 {
	deltaD := -a.w[6] * (float64(r) - 3.0)
	damped := (MaxDifficulty - difficulty) * deltaD / (MaxDifficulty - MinDifficulty)
	next := a.w[7]*a.rawInitDifficulty(Easy) + (1.0-a.w[7])*(difficulty+damped)
	return clampD(next)
}

// nextStability computes cross-day stability, dispatching on the rating:
// Again takes the forget branch, everything else the recall branch.
// The result is clamped to StabilityMin.
func (a *algo) nextStability(difficulty, stability, retrievability float64, r Rating) float64 {
	var next float64
	if r == Again {
		next = a.nextForgetStability(difficulty, stability, retrievability)
	} else {
		next = a.nextRecallStability(difficulty, stability, retrievability, r)
	}
	return clampS(next)
}

// nextRecallStability computes stability after a successful recall.
// S'_r = S * (1 + e^w[8] * (11-D) * S^(-w[9]) * (e^((1-R)*w[10]) - 1) * hardPenalty * easyBonus)
func (a *algo) nextRecallStability(d, s, r float64, rating Rating) float64 {
	hardPenalty := 1.0
	if rating == Hard {
		hardPenalty = a.w[15]
	}
	easyBonus := 1.0
	if rating == Easy {
		easyBonus = a.w[16]
	}
	return s * (1.0 + math.Exp(a.w[8])*
		(11.0-d)*
		math.Pow(s, -a.w[9])*
		(math.Exp((1.0-r)*a.w[10])-1.0)*
		hardPenalty*easyBonus)
}

// nextForgetStability computes stability after forgetting (Again).
// long  = w[11] * D^(-w[12]) * ((S+1)^w[13] - 1) * e^((1-R)*w[14])
// short = S / e^(w[17] * w[18])
// S'_f = min(long, short) — the short-term cap keeps a lapse from ever
// raising stability above the pre-lapse value.
func (a *algo) nextForgetStability(d, s, r float64) float64 {
	long := a.w[11] *
		math.Pow(d, -a.w[12]) *
		(math.Pow(s+1.0, a.w[13]) - 1.0) *
		math.Exp((1.0-r)*a.w[14])
	short := s / math.Exp(a.w[17]*a.w[18])
	return math.Min(long, short)
}

// clampS clamps stability to a minimum of StabilityMin.
func clampS(s float64) float64 {
	return math.Max(s, StabilityMin)
}

// clampD clamps difficulty to [MinDifficulty, MaxDifficulty].
func clampD(d float64) float64 {
	return math.Min(math.Max(d, MinDifficulty), MaxDifficulty)
}
