// Package ratelimit provides an in-memory sliding-window rate limiter
// keyed by (client, ip). State is volatile: a restart resets every
// window. Redis-backed persistence is a known follow-up, not a bug.
package ratelimit

import (
	"log/slog"
	"sync"
	"time"
)

const window = 60 * time.Second

// Limiter is a sliding-window rate limiter. Safe for concurrent use;
// the hot path under the lock is prune + length check + append.
type Limiter struct {
	mu      sync.Mutex
	windows map[string][]time.Time
	now     func() time.Time
}

// New creates a Limiter.
func New() *Limiter {
	return &Limiter{
		windows: make(map[string][]time.Time),
		now:     time.Now,
	}
}

// Key builds the widget-surface key for a (client, ip) pair.
func Key(clientID, ip string) string {
	return clientID + ":" + ip
}

// AdminKey builds the admin-surface key from a token hash prefix.
// Admin requests share one namespace, separate from widget traffic.
func AdminKey(tokenHashPrefix string) string {
	return "admin:" + tokenHashPrefix
}

// Allow reports whether a request under key is admitted given a
// per-minute limit. Admitted requests are recorded; rejected ones
// are not.
func (l *Limiter) Allow(key string, limit int) bool {
	now := l.now()
	cutoff := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamps := l.windows[key]
	kept := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		l.windows[key] = kept
		slog.Warn("Spark rate limit hit", "key", key, "rpm", limit)
		return false
	}

	l.windows[key] = append(kept, now)
	return true
}

// Reset clears all windows. For tests.
func (l *Limiter) Reset() {
	l.mu.Lock()
	l.windows = make(map[string][]time.Time)
	l.mu.Unlock()
}

// setNow overrides the clock. For tests.
func (l *Limiter) setNow(now func() time.Time) {
	l.mu.Lock()
	l.now = now
	l.mu.Unlock()
}
