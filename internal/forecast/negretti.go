package forecast

import "math"

// NegrettiCode is the Negretti system's forecast code together with its
// letter in the Negretti alphabet. It is a distinct type from ZambrettiCode
// so the two systems' outputs cannot be interchanged by accident.
type NegrettiCode struct {
	Code   int
	Letter string
}

// Negretti coefficient set. The scale spreads the normalized pressure
// deficit across the code range; the per-trend offsets shift severity.
// These are deliberately unrelated to the Zambretti tables: the two systems
// must be able to disagree.
const (
	negrettiScale = 20.0

	negrettiFallingOffset = 9.0
	negrettiSteadyOffset  = 3.0
	negrettiRisingOffset  = -2.0
)

// The Negretti letter sequence runs opposite to Zambretti's, matching the
// original dial ordering. Indexed by the Negretti code only.
const negrettiAlphabet = "ZYXWVUTSRQPONMLKJIHGFEDCBA"

// ForecastNegretti derives the Negretti code from pressure and trend using
// the Negretti coefficients. It shares no tables or intermediates with the
// Zambretti path.
func ForecastNegretti(pressureHpa float64, trend TrendBucket) NegrettiCode {
	// Normalized pressure deficit: 0 at the top of the band, 1 at the bottom.
	deficit := (PressureMaxHpa - pressureHpa) / (PressureMaxHpa - PressureMinHpa)

	offset := negrettiSteadyOffset
	switch trend {
	case TrendFalling:
		offset = negrettiFallingOffset
	case TrendRising:
		offset = negrettiRisingOffset
	}

	code := clampCode(int(math.Round(deficit*negrettiScale + offset)))
	return NegrettiCode{Code: code, Letter: negrettiLetter(code)}
}

// negrettiLetter is a pure function of the Negretti code index into the
// Negretti alphabet.
func negrettiLetter(code int) string {
	i := code
	if i > len(negrettiAlphabet)-1 {
		i = len(negrettiAlphabet) - 1
	}
	return string(negrettiAlphabet[i])
}
