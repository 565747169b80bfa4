package forecast

import "math"

// ModelOutput is one forecast system's contribution to the result.
type ModelOutput struct {
	Code   int     `json:"code"`
	Letter string  `json:"letter"`
	Weight float64 `json:"weight"`
}

// Result is the engine output for a single reading.
type Result struct {
	ForecastCode       int               `json:"forecastCode"`
	Description        string            `json:"description"`
	Category           ConditionCategory `json:"conditionCategory"`
	Trend              TrendBucket       `json:"trend"`
	Zambretti          ModelOutput       `json:"zambretti"`
	Negretti           ModelOutput       `json:"negretti"`
	ConsensusAgreement bool              `json:"consensusAgreement"`
}

// Engine runs the forecast pipeline. It holds only immutable station
// placement: identical readings always produce identical results, and an
// Engine is safe for concurrent use by any number of callers.
type Engine struct {
	elevationM float64
}

// NewEngine creates a forecast engine for a sea-level station.
func NewEngine() *Engine {
	return &Engine{}
}

// NewEngineAt creates a forecast engine for a station at the given
// elevation. Station pressure is reduced to sea level before the lookup
// models see it.
func NewEngineAt(elevationM float64) *Engine {
	return &Engine{elevationM: elevationM}
}

// seaLevelPressure reduces the station pressure to sea level using the
// barometric formula. The reading itself is validated as measured; the
// corrected value is a derived intermediate.
func (e *Engine) seaLevelPressure(r SensorReading) float64 {
	if e.elevationM == 0 {
		return r.PressureHpa
	}
	hTerm := 0.0065 * e.elevationM
	return r.PressureHpa * math.Pow(1-hTerm/(r.TemperatureC+hTerm+273.15), -5.257)
}

// Forecast validates the reading and runs it through the full pipeline:
// trend classification, both forecast systems, consensus weighting and the
// humidity correction.
func (e *Engine) Forecast(r SensorReading) (Result, error) {
	if err := r.Validate(); err != nil {
		return Result{}, err
	}

	trend := ClassifyTrend(r.PressureChange3h)
	pressure := e.seaLevelPressure(r)
	z := ForecastZambretti(pressure, trend, r.Timestamp.Month())
	n := ForecastNegretti(pressure, trend)

	consensus := Combine(z, n, r.PressureChange3h)
	adjusted := AdjustForHumidity(consensus, r.HumidityPct)

	return Result{
		ForecastCode: adjusted.Code,
		Description:  Describe(adjusted.Code),
		Category:     Categorize(adjusted.Code),
		Trend:        trend,
		Zambretti: ModelOutput{
			Code:   z.Code,
			Letter: z.Letter,
			Weight: adjusted.ZambrettiWeight,
		},
		Negretti: ModelOutput{
			Code:   n.Code,
			Letter: n.Letter,
			Weight: adjusted.NegrettiWeight,
		},
		ConsensusAgreement: adjusted.Agreement,
	}, nil
}

// ProjectTemperature returns the hourly temperature projection for the
// reading, one independently computed sample per offset 1..hours.
func (e *Engine) ProjectTemperature(r SensorReading, hours int) ([]TemperatureSample, error) {
	return ProjectTemperature(r, hours)
}
