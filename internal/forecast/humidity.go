package forecast

// Humidity bands above which the consensus code is tightened toward a
// wetter outlook. Pressure-only models underweight fog and drizzle risk at
// very high humidity.
const (
	humidityShiftPct     = 90.0
	humidityHardShiftPct = 95.0
)

// AdjustForHumidity applies the humidity correction to a consensus result.
// The shift is monotonic toward wetter categories and never touches the
// weights or the agreement flag.
func AdjustForHumidity(c ConsensusResult, humidityPct float64) ConsensusResult {
	shift := 0
	switch {
	case humidityPct >= humidityHardShiftPct:
		shift = 2
	case humidityPct >= humidityShiftPct:
		shift = 1
	}

	c.Code = clampCode(c.Code + shift)
	return c
}
