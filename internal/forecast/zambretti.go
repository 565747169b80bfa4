package forecast

import (
	"math"
	"time"
)

// ZambrettiCode is the Zambretti system's forecast code together with its
// letter in the Zambretti alphabet. The letter namespace is Zambretti's own;
// it must never be derived through the Negretti alphabet.
type ZambrettiCode struct {
	Code   int
	Letter string
}

// zambrettiOptions is the number of discrete options the valid pressure
// range is scaled into.
const zambrettiOptions = 22

const zambrettiAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Per-trend option-to-code tables. Option 0 corresponds to the top of the
// pressure range (most settled), option 21 to the bottom (stormiest).
var (
	zambrettiFalling = [zambrettiOptions]int{
		3, 5, 7, 9, 11, 13, 15, 16, 16, 16, 17,
		17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 26,
	}
	zambrettiSteady = [zambrettiOptions]int{
		0, 1, 2, 4, 5, 7, 9, 10, 11, 12, 13,
		14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24,
	}
	zambrettiRising = [zambrettiOptions]int{
		0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 11,
		12, 13, 14, 15, 16, 17, 19, 20, 21, 22, 23,
	}
)

// ZOption scales a pressure into the continuous option space [0, 21],
// increasing with severity (falling pressure). The result is finite for any
// pressure in the valid band.
func ZOption(pressureHpa float64) float64 {
	return (PressureMaxHpa - pressureHpa) / (PressureMaxHpa - PressureMinHpa) * float64(zambrettiOptions-1)
}

// ForecastZambretti maps pressure, trend and month to a Zambretti code.
// Rounding ties break toward the higher, more severe option; the seasonal
// adjustment nudges the option for winter rises and summer falls.
func ForecastZambretti(pressureHpa float64, trend TrendBucket, month time.Month) ZambrettiCode {
	// floor(x+0.5) rounds half up, so a tie lands on the more severe option.
	option := int(math.Floor(ZOption(pressureHpa) + 0.5))

	switch {
	case trend == TrendRising && isWinter(month):
		// Winter rises are less trustworthy than summer ones.
		option++
	case trend == TrendFalling && isSummer(month):
		// Summer falls overstate severity.
		option--
	}

	if option < 0 {
		option = 0
	}
	if option > zambrettiOptions-1 {
		option = zambrettiOptions - 1
	}

	var code int
	switch trend {
	case TrendRising:
		code = zambrettiRising[option]
	case TrendFalling:
		code = zambrettiFalling[option]
	default:
		code = zambrettiSteady[option]
	}

	code = clampCode(code)
	return ZambrettiCode{Code: code, Letter: zambrettiLetter(code)}
}

func zambrettiLetter(code int) string {
	i := code
	if i > len(zambrettiAlphabet)-1 {
		i = len(zambrettiAlphabet) - 1
	}
	return string(zambrettiAlphabet[i])
}

func isWinter(m time.Month) bool {
	return m == time.December || m == time.January || m == time.February
}

func isSummer(m time.Month) bool {
	return m == time.June || m == time.July || m == time.August
}
