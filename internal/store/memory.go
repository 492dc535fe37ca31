package store

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
	"github.com/Arshya-tech/ClearAlert/internal/geocode"
	"github.com/Arshya-tech/ClearAlert/internal/profile"
)

// ErrNotFound is returned when no snapshot is cached for a location.
var ErrNotFound = errors.New("no cached alerts for location")

// Snapshot is the cached aggregation result for one location, kept so the
// API can serve a last-known-good view when upstreams are unreachable.
type Snapshot struct {
	Alerts     []alert.Alert     `json:"alerts"`
	Location   *geocode.Location `json:"location,omitempty"`
	Message    string            `json:"message"`
	LastCached time.Time         `json:"lastCached"`
}

// Settings holds user-facing preferences and the personalization profile.
// It lives behind the store rather than in a process-global so handlers get
// it as an injected dependency.
type Settings struct {
	Language      string          `json:"language"`
	HighContrast  bool            `json:"highContrast"`
	LargeText     bool            `json:"largeText"`
	ReducedMotion bool            `json:"reducedMotion"`
	Profile       profile.Profile `json:"profile"`
}

// DefaultSettings is the initial settings state.
func DefaultSettings() Settings {
	return Settings{Language: "en"}
}

// MemoryStore is a concurrency-safe in-memory store for alert snapshots and
// settings.
type MemoryStore struct {
	mu sync.RWMutex

	// key: normalized location query
	snapshots map[string]Snapshot
	settings  Settings

	// maxAge drops snapshots older than this on read; 0 means unlimited.
	maxAge time.Duration
}

// NewMemoryStore creates a MemoryStore with an optional snapshot age limit.
func NewMemoryStore(maxAge time.Duration) *MemoryStore {
	return &MemoryStore{
		snapshots: make(map[string]Snapshot),
		settings:  DefaultSettings(),
		maxAge:    maxAge,
	}
}

// SaveSnapshot stores the latest aggregation result for a location query.
func (s *MemoryStore) SaveSnapshot(locationQuery string, snapshot Snapshot) {
	key := normalizeKey(locationQuery)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshots[key] = snapshot
}

// GetSnapshot returns the cached snapshot for a location query, enforcing
// the age limit.
func (s *MemoryStore) GetSnapshot(locationQuery string) (Snapshot, error) {
	key := normalizeKey(locationQuery)

	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot, ok := s.snapshots[key]
	if !ok {
		return Snapshot{}, ErrNotFound
	}
	if s.maxAge > 0 && time.Since(snapshot.LastCached) > s.maxAge {
		return Snapshot{}, ErrNotFound
	}
	return snapshot, nil
}

// GetSettings returns the current settings.
func (s *MemoryStore) GetSettings() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings merges the given update into the stored settings and
// returns the result. An empty language keeps the current one; booleans and
// the profile are taken as provided.
func (s *MemoryStore) UpdateSettings(update Settings) Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Language != "" {
		s.settings.Language = update.Language
	}
	s.settings.HighContrast = update.HighContrast
	s.settings.LargeText = update.LargeText
	s.settings.ReducedMotion = update.ReducedMotion
	if update.Profile.IsConfigured {
		s.settings.Profile = update.Profile
	}
	return s.settings
}

func normalizeKey(locationQuery string) string {
	return strings.ToLower(strings.TrimSpace(locationQuery))
}
