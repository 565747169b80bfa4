package station

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/i474232898/baro-forecast/internal/forecast"
)

// Source abstracts where a point-in-time sensor reading comes from
// (e.g. a local weather-station HTTP endpoint).
type Source interface {
	Name() string
	Read(ctx context.Context) (forecast.SensorReading, error)
}

// Snapshot pairs a reading with the forecast computed from it.
type Snapshot struct {
	Station    string                 `json:"station"`
	Reading    forecast.SensorReading `json:"reading"`
	Result     forecast.Result        `json:"result"`
	ComputedAt time.Time              `json:"computedAt"` // always UTC
}

// Store is the contract the in-memory store (and any future persistent
// store) must satisfy.
type Store interface {
	SaveSnapshot(station string, snap Snapshot)
	GetLatest(station string) (Snapshot, error)
	GetRange(station string, from, to time.Time) ([]Snapshot, error)
}

// Service orchestrates reading the sensor source, running the forecast
// engine and persisting snapshots.
type Service struct {
	name     string
	latitude *float64
	source   Source
	engine   *forecast.Engine
	store    Store
}

// NewService creates a new Service. latitude may be nil; when set it is
// attached to readings that do not carry their own.
func NewService(name string, latitude *float64, source Source, engine *forecast.Engine, store Store) *Service {
	return &Service{
		name:     name,
		latitude: latitude,
		source:   source,
		engine:   engine,
		store:    store,
	}
}

// PollAndStore reads the sensor source, computes a forecast and stores the
// snapshot. A failed read keeps the last good snapshot untouched.
func (s *Service) PollAndStore(ctx context.Context) error {
	if s.source == nil {
		return fmt.Errorf("no sensor source configured")
	}

	reading, err := s.source.Read(ctx)
	if err != nil {
		log.Printf("source %s read failed for %s: %v", s.source.Name(), s.name, err)
		return err
	}

	if reading.LatitudeDeg == nil && s.latitude != nil {
		lat := *s.latitude
		reading.LatitudeDeg = &lat
	}

	result, err := s.engine.Forecast(reading)
	if err != nil {
		return fmt.Errorf("forecast for %s: %w", s.name, err)
	}

	s.store.SaveSnapshot(s.name, Snapshot{
		Station:    s.name,
		Reading:    reading,
		Result:     result,
		ComputedAt: time.Now().UTC(),
	})
	return nil
}

// Compute runs the engine on a caller-supplied reading without storing it.
func (s *Service) Compute(r forecast.SensorReading) (forecast.Result, error) {
	return s.engine.Forecast(r)
}

// ProjectFromReading returns the hourly temperature projection for a
// caller-supplied reading.
func (s *Service) ProjectFromReading(r forecast.SensorReading, hours int) ([]forecast.TemperatureSample, error) {
	return s.engine.ProjectTemperature(r, hours)
}

// ProjectTemperature projects from the most recent stored reading.
func (s *Service) ProjectTemperature(hours int) ([]forecast.TemperatureSample, error) {
	latest, err := s.store.GetLatest(s.name)
	if err != nil {
		return nil, err
	}
	return s.engine.ProjectTemperature(latest.Reading, hours)
}

// Latest delegates to the underlying store.
func (s *Service) Latest() (Snapshot, error) {
	return s.store.GetLatest(s.name)
}

// Range delegates to the underlying store.
func (s *Service) Range(from, to time.Time) ([]Snapshot, error) {
	return s.store.GetRange(s.name, from, to)
}
