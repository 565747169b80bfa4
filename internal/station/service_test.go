package station

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/i474232898/baro-forecast/internal/forecast"
)

type fakeSource struct {
	reading forecast.SensorReading
	err     error
}

func (f *fakeSource) Name() string { return "fake" }

func (f *fakeSource) Read(ctx context.Context) (forecast.SensorReading, error) {
	return f.reading, f.err
}

type fakeStore struct {
	saved []Snapshot
}

func (f *fakeStore) SaveSnapshot(stationName string, snap Snapshot) {
	f.saved = append(f.saved, snap)
}

func (f *fakeStore) GetLatest(stationName string) (Snapshot, error) {
	if len(f.saved) == 0 {
		return Snapshot{}, errors.New("empty")
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeStore) GetRange(stationName string, from, to time.Time) ([]Snapshot, error) {
	return f.saved, nil
}

func validReading() forecast.SensorReading {
	return forecast.SensorReading{
		Timestamp:        time.Date(2024, time.February, 10, 14, 26, 0, 0, time.UTC),
		PressureHpa:      1008.9,
		PressureChange3h: -2.7,
		HumidityPct:      94.2,
		TemperatureC:     2.6,
	}
}

func TestPollAndStore(t *testing.T) {
	src := &fakeSource{reading: validReading()}
	st := &fakeStore{}
	svc := NewService("roof", nil, src, forecast.NewEngine(), st)

	if err := svc.PollAndStore(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(st.saved) != 1 {
		t.Fatalf("saved %d snapshots, want 1", len(st.saved))
	}
	snap := st.saved[0]
	if snap.Station != "roof" {
		t.Errorf("station = %q, want roof", snap.Station)
	}
	if snap.Result.ForecastCode != 17 {
		t.Errorf("forecast code = %d, want 17", snap.Result.ForecastCode)
	}
	if snap.ComputedAt.IsZero() {
		t.Error("ComputedAt not set")
	}
}

func TestPollAndStoreAttachesConfiguredLatitude(t *testing.T) {
	lat := 52.0
	src := &fakeSource{reading: validReading()}
	st := &fakeStore{}
	svc := NewService("roof", &lat, src, forecast.NewEngine(), st)

	if err := svc.PollAndStore(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := st.saved[0].Reading.LatitudeDeg
	if got == nil || *got != lat {
		t.Errorf("latitude = %v, want %v", got, lat)
	}
}

func TestPollAndStoreKeepsLastGoodSnapshotOnReadError(t *testing.T) {
	src := &fakeSource{err: errors.New("sensor offline")}
	st := &fakeStore{saved: []Snapshot{{Station: "roof"}}}
	svc := NewService("roof", nil, src, forecast.NewEngine(), st)

	if err := svc.PollAndStore(context.Background()); err == nil {
		t.Fatal("expected error from failing source")
	}
	if len(st.saved) != 1 {
		t.Errorf("store modified on failed read: %d snapshots", len(st.saved))
	}
}

func TestPollAndStoreRejectsInvalidReading(t *testing.T) {
	bad := validReading()
	bad.PressureHpa = 600

	src := &fakeSource{reading: bad}
	st := &fakeStore{}
	svc := NewService("roof", nil, src, forecast.NewEngine(), st)

	err := svc.PollAndStore(context.Background())
	var outOfRange *forecast.OutOfRangeInputError
	if !errors.As(err, &outOfRange) {
		t.Fatalf("expected OutOfRangeInputError, got %v", err)
	}
	if len(st.saved) != 0 {
		t.Error("invalid reading must not be stored")
	}
}

func TestPollAndStoreWithoutSource(t *testing.T) {
	svc := NewService("roof", nil, nil, forecast.NewEngine(), &fakeStore{})

	if err := svc.PollAndStore(context.Background()); err == nil {
		t.Fatal("expected error when no source is configured")
	}
}
