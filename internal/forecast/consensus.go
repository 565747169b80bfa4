package forecast

import "math"

// ConsensusResult is the blended outcome of the two forecast systems before
// humidity adjustment.
type ConsensusResult struct {
	Code            int
	ZambrettiWeight float64
	NegrettiWeight  float64

	// Agreement is true iff both raw codes were equal.
	Agreement bool
}

// Weighting constants. Weight starts even and ramps toward the
// pressure-centric Zambretti model as the trend magnitude grows.
const (
	baseModelWeight    = 0.5
	weightRampPerHpa   = 0.1
	maxZambrettiWeight = 0.75
)

// ZambrettiWeightFor returns the Zambretti share of the consensus weight
// for a given 3-hour pressure change. Monotonic in |change3h| and bounded
// by maxZambrettiWeight.
func ZambrettiWeightFor(change3h float64) float64 {
	w := baseModelWeight + math.Abs(change3h)*weightRampPerHpa
	if w > maxZambrettiWeight {
		w = maxZambrettiWeight
	}
	return w
}

// Combine blends the two system outputs. Equal codes are selected directly;
// otherwise the code of the model holding at least half the weight wins.
// The returned weights always sum to exactly 1.0.
func Combine(z ZambrettiCode, n NegrettiCode, change3h float64) ConsensusResult {
	wz := ZambrettiWeightFor(change3h)
	// wz is in [0.5, 1], so 1-wz is exact and the pair sums to exactly 1.0.
	wn := 1 - wz

	res := ConsensusResult{
		ZambrettiWeight: wz,
		NegrettiWeight:  wn,
	}

	if z.Code == n.Code {
		res.Code = z.Code
		res.Agreement = true
		return res
	}

	if wz >= baseModelWeight {
		res.Code = z.Code
	} else {
		res.Code = n.Code
	}
	return res
}
