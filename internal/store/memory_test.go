package store

import (
	"errors"
	"testing"
	"time"

	"github.com/i474232898/baro-forecast/internal/station"
)

func snapshotAt(ts time.Time, code int) station.Snapshot {
	snap := station.Snapshot{
		Station:    "test",
		ComputedAt: ts,
	}
	snap.Result.ForecastCode = code
	return snap
}

func TestMemoryStoreLatest(t *testing.T) {
	s := NewMemoryStore(10, 0)

	if _, err := s.GetLatest("test"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty store, got %v", err)
	}

	base := time.Now().UTC()
	s.SaveSnapshot("test", snapshotAt(base.Add(-2*time.Hour), 5))
	s.SaveSnapshot("test", snapshotAt(base.Add(-1*time.Hour), 9))
	s.SaveSnapshot("test", snapshotAt(base, 17))

	latest, err := s.GetLatest("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if latest.Result.ForecastCode != 17 {
		t.Errorf("latest code = %d, want 17", latest.Result.ForecastCode)
	}
}

func TestMemoryStoreRange(t *testing.T) {
	s := NewMemoryStore(10, 0)

	base := time.Now().UTC()
	s.SaveSnapshot("test", snapshotAt(base.Add(-3*time.Hour), 1))
	s.SaveSnapshot("test", snapshotAt(base.Add(-2*time.Hour), 2))
	s.SaveSnapshot("test", snapshotAt(base.Add(-1*time.Hour), 3))

	got, err := s.GetRange("test", base.Add(-2*time.Hour), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d snapshots, want 2", len(got))
	}
	if got[0].Result.ForecastCode != 2 || got[1].Result.ForecastCode != 3 {
		t.Errorf("unexpected snapshots in range: %+v", got)
	}

	if _, err := s.GetRange("test", base.Add(time.Hour), base.Add(2*time.Hour)); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for empty range, got %v", err)
	}
}

func TestMemoryStoreRetentionByCount(t *testing.T) {
	s := NewMemoryStore(2, 0)

	base := time.Now().UTC()
	for i := 0; i < 5; i++ {
		s.SaveSnapshot("test", snapshotAt(base.Add(time.Duration(i)*time.Minute), i))
	}

	got, err := s.GetRange("test", base.Add(-time.Hour), base.Add(time.Hour))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d snapshots after retention, want 2", len(got))
	}
	if got[0].Result.ForecastCode != 3 || got[1].Result.ForecastCode != 4 {
		t.Errorf("retention kept the wrong snapshots: %+v", got)
	}
}

func TestMemoryStoreKeysByStation(t *testing.T) {
	s := NewMemoryStore(10, 0)

	s.SaveSnapshot("roof", snapshotAt(time.Now().UTC(), 4))

	if _, err := s.GetLatest("garden"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for other station, got %v", err)
	}
}
