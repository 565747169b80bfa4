package forecast

import (
	"math"
	"time"
)

// Physically plausible band for station-level barometric pressure.
const (
	PressureMinHpa = 870.0
	PressureMaxHpa = 1085.0
)

// SensorReading is a single point-in-time set of local sensor values.
// The engine consumes one reading per call and keeps no state between calls.
type SensorReading struct {
	Timestamp        time.Time `json:"timestamp"`
	PressureHpa      float64   `json:"pressureHpa"`
	PressureChange3h float64   `json:"pressureChange3h"`
	HumidityPct      float64   `json:"humidityPct"`
	TemperatureC     float64   `json:"temperatureC"`

	// LatitudeDeg is optional; when present it only refines solar-noon
	// timing in the diurnal model.
	LatitudeDeg *float64 `json:"latitudeDeg,omitempty"`
}

// Validate checks the reading against the engine's input contract.
// Missing fields and out-of-range fields are distinct failures; neither is
// ever silently corrected.
func (r SensorReading) Validate() error {
	if r.Timestamp.IsZero() {
		return &MissingInputError{Field: "timestamp"}
	}

	numeric := []struct {
		name  string
		value float64
	}{
		{"pressureHpa", r.PressureHpa},
		{"pressureChange3h", r.PressureChange3h},
		{"humidityPct", r.HumidityPct},
		{"temperatureC", r.TemperatureC},
	}
	for _, f := range numeric {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &MissingInputError{Field: f.name}
		}
	}

	if r.PressureHpa < PressureMinHpa || r.PressureHpa > PressureMaxHpa {
		return &OutOfRangeInputError{
			Field: "pressureHpa",
			Value: r.PressureHpa,
			Min:   PressureMinHpa,
			Max:   PressureMaxHpa,
		}
	}
	if r.HumidityPct < 0 || r.HumidityPct > 100 {
		return &OutOfRangeInputError{
			Field: "humidityPct",
			Value: r.HumidityPct,
			Min:   0,
			Max:   100,
		}
	}
	if r.LatitudeDeg != nil && (*r.LatitudeDeg < -90 || *r.LatitudeDeg > 90) {
		return &OutOfRangeInputError{
			Field: "latitudeDeg",
			Value: *r.LatitudeDeg,
			Min:   -90,
			Max:   90,
		}
	}

	return nil
}
