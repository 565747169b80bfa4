package forecast

import (
	"fmt"
	"math"
	"time"
)

// TemperatureSample is one projected hourly temperature. Samples are
// independent of each other: every hour offset is recomputed from the
// original reading, so errors cannot accumulate across the horizon.
type TemperatureSample struct {
	HourOffset     int     `json:"hourOffset"`
	PredictedTempC float64 `json:"predictedTempC"`
}

// Diurnal model constants. Empirically tuned; documented alongside the
// golden scenario in the engine tests.
const (
	peakTempDeltaC      = 1.5 // conservative estimate of peak above current
	nightCoolingCoeff   = 0.3
	nightWindowStartH   = 3.0 // hours past peak before night cooling begins
	dawnHour            = 6.0
	cloudBlanketHpa     = -2.0 // 3h change below this adds the warm offset
	cloudBlanketOffsetC = 0.4
)

// seasonalAmplitude is the day-curve swing per season, reduced in winter.
func seasonalAmplitude(m time.Month) float64 {
	switch {
	case isWinter(m):
		return 4.0
	case isSummer(m):
		return 9.0
	case m >= time.March && m <= time.May:
		return 7.0
	default:
		return 6.0
	}
}

// seasonalPeakOffset shifts the warmest hour past solar noon; later in
// summer when the ground keeps absorbing longer.
func seasonalPeakOffset(m time.Month) float64 {
	switch {
	case isWinter(m):
		return 0.5
	case isSummer(m):
		return 1.5
	default:
		return 1.0
	}
}

// peakHourFor places the warmest hour of the day. Latitude, when known,
// nudges it slightly to account for the flatter high-latitude sun arc.
func peakHourFor(m time.Month, latitudeDeg *float64) float64 {
	peak := 12.0 + seasonalPeakOffset(m)
	if latitudeDeg != nil {
		lat := *latitudeDeg
		if lat > 60 {
			lat = 60
		}
		if lat < -60 {
			lat = -60
		}
		peak += lat / 120.0
	}
	return peak
}

// PredictTemperature projects the temperature hourOffset hours past the
// reading. Pure and total for any offset >= 1.
func PredictTemperature(r SensorReading, hourOffset int) (float64, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}
	if hourOffset < 1 {
		return 0, fmt.Errorf("hour offset must be >= 1, got %d", hourOffset)
	}

	month := r.Timestamp.Month()
	amplitude := seasonalAmplitude(month)
	peakHour := peakHourFor(month, r.LatitudeDeg)

	peakTemp := r.TemperatureC + peakTempDeltaC
	baseTemp := peakTemp - amplitude*0.5

	nowHour := float64(r.Timestamp.Hour()) + float64(r.Timestamp.Minute())/60.0
	hourOfDay := math.Mod(nowHour+float64(hourOffset), 24)

	variation := amplitude * math.Cos(2*math.Pi*(hourOfDay-peakHour)/24)
	predicted := baseTemp + variation

	// Asymmetric night cooling: radiative loss from ~3h past peak through
	// pre-dawn, growing logarithmically with time since peak.
	hoursSincePeak := math.Mod(hourOfDay-peakHour, 24)
	if hoursSincePeak < 0 {
		hoursSincePeak += 24
	}
	// Guard the logarithm's domain; this corrects a derived intermediate,
	// never a user input.
	if hoursSincePeak < 0 {
		hoursSincePeak = 0
	}
	inNight := hoursSincePeak > nightWindowStartH &&
		(hourOfDay < dawnHour || hourOfDay > peakHour+nightWindowStartH)
	if inNight {
		predicted -= nightCoolingCoeff * math.Log(hoursSincePeak+1)
	}

	// A strongly falling barometer usually means incoming cloud cover,
	// which reduces radiative cooling.
	if r.PressureChange3h < cloudBlanketHpa {
		predicted += cloudBlanketOffsetC
	}

	return math.Round(predicted*10) / 10, nil
}

// ProjectTemperature computes the hourly projection for offsets 1..hours.
// Each sample is computed independently from the reading.
func ProjectTemperature(r SensorReading, hours int) ([]TemperatureSample, error) {
	if hours < 1 {
		return nil, fmt.Errorf("projection horizon must be >= 1, got %d", hours)
	}

	samples := make([]TemperatureSample, 0, hours)
	for offset := 1; offset <= hours; offset++ {
		temp, err := PredictTemperature(r, offset)
		if err != nil {
			return nil, err
		}
		samples = append(samples, TemperatureSample{
			HourOffset:     offset,
			PredictedTempC: temp,
		})
	}
	return samples, nil
}
