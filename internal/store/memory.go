package store

import (
	"errors"
	"sync"
	"time"

	"github.com/i474232898/baro-forecast/internal/station"
)

var (
	// ErrNotFound is returned when no snapshot is available for a station.
	ErrNotFound = errors.New("no forecast data for station")
)

// SnapshotHistory holds a time-ordered list of forecast snapshots for a station.
type SnapshotHistory struct {
	Snapshots []station.Snapshot
}

// MemoryStore is a concurrency-safe in-memory implementation of the station
// store contract.
type MemoryStore struct {
	mu sync.RWMutex

	// key: station name, value: history
	data map[string]*SnapshotHistory

	// retention configuration
	maxHistory int           // max number of snapshots per station
	maxAge     time.Duration // optional max age for snapshots
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxHistory is <= 0, it is treated as unlimited.
func NewMemoryStore(maxHistory int, maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		data:       make(map[string]*SnapshotHistory),
		maxHistory: maxHistory,
		maxAge:     maxAge,
	}
}

// SaveSnapshot appends a new snapshot for a station and enforces retention.
func (s *MemoryStore) SaveSnapshot(stationName string, snap station.Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	history, ok := s.data[stationName]
	if !ok {
		history = &SnapshotHistory{}
		s.data[stationName] = history
	}

	history.Snapshots = append(history.Snapshots, snap)

	// Enforce retention by count.
	if s.maxHistory > 0 && len(history.Snapshots) > s.maxHistory {
		over := len(history.Snapshots) - s.maxHistory
		history.Snapshots = history.Snapshots[over:]
	}

	// Enforce retention by age.
	if s.maxAge > 0 {
		cutoff := time.Now().Add(-s.maxAge)
		i := 0
		for ; i < len(history.Snapshots); i++ {
			if !history.Snapshots[i].ComputedAt.Before(cutoff) {
				break
			}
		}
		if i > 0 && i < len(history.Snapshots) {
			history.Snapshots = history.Snapshots[i:]
		}
	}
}

// GetLatest returns the most recent snapshot for a station.
func (s *MemoryStore) GetLatest(stationName string) (station.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[stationName]
	if !ok || len(history.Snapshots) == 0 {
		return station.Snapshot{}, ErrNotFound
	}
	return history.Snapshots[len(history.Snapshots)-1], nil
}

// GetRange returns all snapshots for a station between from and to (inclusive).
func (s *MemoryStore) GetRange(stationName string, from, to time.Time) ([]station.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.data[stationName]
	if !ok || len(history.Snapshots) == 0 {
		return nil, ErrNotFound
	}

	var result []station.Snapshot
	for _, snap := range history.Snapshots {
		if !snap.ComputedAt.Before(from) && !snap.ComputedAt.After(to) {
			result = append(result, snap)
		}
	}

	if len(result) == 0 {
		return nil, ErrNotFound
	}

	return result, nil
}
