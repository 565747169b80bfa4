package sensors

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/i474232898/baro-forecast/internal/forecast"
)

// HTTPStationSource reads a point-in-time sensor sample from a local
// weather-station firmware endpoint serving JSON.
type HTTPStationSource struct {
	name    string
	url     string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewHTTPStationSource creates a source for the given station endpoint.
func NewHTTPStationSource(client *http.Client, url string) *HTTPStationSource {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "httpstation",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &HTTPStationSource{
		name: "httpstation",
		url:  url,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		circuit: cb,
	}
}

func (s *HTTPStationSource) Name() string {
	return s.name
}

// Read fetches the station's current sample. Fields the firmware omitted
// surface as MissingInputError rather than zero values.
func (s *HTTPStationSource) Read(ctx context.Context) (forecast.SensorReading, error) {
	buildRequest := func() (*http.Request, error) {
		return http.NewRequest(http.MethodGet, s.url, nil)
	}

	resp, err := fetchWithResilience(ctx, s.httpCfg, s.circuit, buildRequest)
	if err != nil {
		return forecast.SensorReading{}, err
	}
	defer resp.Body.Close()

	var payload struct {
		Timestamp        *int64   `json:"timestamp"`
		PressureHpa      *float64 `json:"pressure_hpa"`
		PressureChange3h *float64 `json:"pressure_change_3h"`
		HumidityPct      *float64 `json:"humidity_pct"`
		TemperatureC     *float64 `json:"temperature_c"`
		LatitudeDeg      *float64 `json:"latitude_deg"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return forecast.SensorReading{}, err
	}

	switch {
	case payload.Timestamp == nil:
		return forecast.SensorReading{}, &forecast.MissingInputError{Field: "timestamp"}
	case payload.PressureHpa == nil:
		return forecast.SensorReading{}, &forecast.MissingInputError{Field: "pressureHpa"}
	case payload.PressureChange3h == nil:
		return forecast.SensorReading{}, &forecast.MissingInputError{Field: "pressureChange3h"}
	case payload.HumidityPct == nil:
		return forecast.SensorReading{}, &forecast.MissingInputError{Field: "humidityPct"}
	case payload.TemperatureC == nil:
		return forecast.SensorReading{}, &forecast.MissingInputError{Field: "temperatureC"}
	}

	reading := forecast.SensorReading{
		Timestamp:        time.Unix(*payload.Timestamp, 0).Local(),
		PressureHpa:      *payload.PressureHpa,
		PressureChange3h: *payload.PressureChange3h,
		HumidityPct:      *payload.HumidityPct,
		TemperatureC:     *payload.TemperatureC,
		LatitudeDeg:      payload.LatitudeDeg,
	}

	if err := reading.Validate(); err != nil {
		return forecast.SensorReading{}, err
	}
	return reading, nil
}
