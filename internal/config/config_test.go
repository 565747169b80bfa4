package config

import (
	"errors"
	"testing"
)

func TestValidateElevation(t *testing.T) {
	cases := []struct {
		name   string
		value  float64
		verify func(t *testing.T, err error)
	}{
		{
			name:  "below minimum",
			value: -600,
			verify: func(t *testing.T, err error) {
				var tooLow *ElevationTooLowError
				if !errors.As(err, &tooLow) {
					t.Fatalf("expected ElevationTooLowError, got %v", err)
				}
				if tooLow.MinM != DefaultElevationMinM {
					t.Errorf("MinM = %v, want %v", tooLow.MinM, DefaultElevationMinM)
				}
			},
		},
		{
			name:  "above maximum",
			value: 10000,
			verify: func(t *testing.T, err error) {
				var tooHigh *ElevationTooHighError
				if !errors.As(err, &tooHigh) {
					t.Fatalf("expected ElevationTooHighError, got %v", err)
				}
				if tooHigh.MaxM != DefaultElevationMaxM {
					t.Errorf("MaxM = %v, want %v", tooHigh.MaxM, DefaultElevationMaxM)
				}
			},
		},
		{
			name:  "within bounds",
			value: 120,
			verify: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("expected acceptance, got %v", err)
				}
			},
		},
		{
			name:  "at lower bound",
			value: DefaultElevationMinM,
			verify: func(t *testing.T, err error) {
				if err != nil {
					t.Fatalf("expected acceptance, got %v", err)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.verify(t, ValidateElevation(tc.value, DefaultElevationMinM, DefaultElevationMaxM))
		})
	}
}

func TestLoadRejectsOutOfRangeElevation(t *testing.T) {
	t.Setenv("STATION_ELEVATION_M", "-600")

	_, err := Load()
	var tooLow *ElevationTooLowError
	if !errors.As(err, &tooLow) {
		t.Fatalf("expected ElevationTooLowError, got %v", err)
	}
}

func TestLoadAcceptsElevationUnchanged(t *testing.T) {
	t.Setenv("STATION_ELEVATION_M", "120.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ElevationM != 120.5 {
		t.Errorf("ElevationM = %v, want 120.5", cfg.ElevationM)
	}
}

func TestLoadHonoursElevationBoundOverrides(t *testing.T) {
	t.Setenv("STATION_ELEVATION_M", "-600")
	t.Setenv("STATION_ELEVATION_MIN_M", "-700")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ElevationM != -600 {
		t.Errorf("ElevationM = %v, want -600", cfg.ElevationM)
	}
}

func TestLoadParsesDirectLatitude(t *testing.T) {
	t.Setenv("STATION_LATITUDE", "52.23")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StationLatitude == nil || *cfg.StationLatitude != 52.23 {
		t.Errorf("StationLatitude = %v, want 52.23", cfg.StationLatitude)
	}
}
