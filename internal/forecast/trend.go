package forecast

import "math"

// TrendBucket classifies the 3-hour pressure change.
type TrendBucket string

const (
	TrendRising  TrendBucket = "rising"
	TrendSteady  TrendBucket = "steady"
	TrendFalling TrendBucket = "falling"
)

// SteadyBandHpa is the symmetric band around zero within which the 3-hour
// pressure change counts as steady.
const SteadyBandHpa = 1.6

// ClassifyTrend buckets a signed 3-hour pressure delta. Every real value
// maps to exactly one bucket.
func ClassifyTrend(change3h float64) TrendBucket {
	if math.Abs(change3h) < SteadyBandHpa {
		return TrendSteady
	}
	if change3h > 0 {
		return TrendRising
	}
	return TrendFalling
}
