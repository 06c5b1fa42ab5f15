// Package session tracks the last accepted message per sender so that
// retried or double-tapped webhook deliveries are answered only once.
package session

import (
	"sync"
	"time"
)

const (
	DefaultDuplicateWindow = 2 * time.Second
	DefaultIdleTimeout     = 300 * time.Second
	DefaultSweepInterval   = 300 * time.Second
)

type Config struct {
	DuplicateWindow time.Duration `mapstructure:"duplicate_window"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	SweepInterval   time.Duration `mapstructure:"sweep_interval"`
}

// Store is an in-memory sender -> last-accepted-at map. A single mutex guards
// the map and lastSweep, so the sweep, the duplicate check and the update
// happen as one step.
type Store struct {
	mu        sync.Mutex
	entries   map[string]time.Time
	lastSweep time.Time

	window        time.Duration
	idleTimeout   time.Duration
	sweepInterval time.Duration
}

// NewStore creates an empty store. Zero durations in cfg fall back to the defaults.
// The sweep clock starts at now.
func NewStore(cfg Config, now time.Time) *Store {
	if cfg.DuplicateWindow <= 0 {
		cfg.DuplicateWindow = DefaultDuplicateWindow
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = DefaultIdleTimeout
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = DefaultSweepInterval
	}

	return &Store{
		entries:       make(map[string]time.Time),
		lastSweep:     now,
		window:        cfg.DuplicateWindow,
		idleTimeout:   cfg.IdleTimeout,
		sweepInterval: cfg.SweepInterval,
	}
}

// CheckAndUpdate reports whether a message from sender at now should be
// answered. It first runs the periodic sweep when the sweep interval has
// elapsed. A sender seen less than the duplicate window ago is rejected and
// its timestamp is left untouched; otherwise the timestamp is set to now.
func (s *Store) CheckAndUpdate(sender string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if now.Sub(s.lastSweep) > s.sweepInterval {
		s.sweepLocked(now)
	}

	if last, ok := s.entries[sender]; ok && now.Sub(last) < s.window {
		return false
	}

	s.entries[sender] = now
	return true
}

// Sweep removes every entry idle for longer than the idle timeout regardless
// of when the last sweep ran, and returns how many were removed.
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweepLocked(now)
}

// Len returns the number of live entries.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.entries)
}

func (s *Store) sweepLocked(now time.Time) int {
	removed := 0
	for sender, last := range s.entries {
		if now.Sub(last) > s.idleTimeout {
			delete(s.entries, sender)
			removed++
		}
	}
	s.lastSweep = now
	return removed
}
