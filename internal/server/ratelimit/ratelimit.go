// Package ratelimit provides per-client request limiting using the token
// bucket algorithm.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Limit           int           // requests per window
	Window          time.Duration // refill window
	Burst           int           // bucket capacity; defaults to Limit
	CleanupInterval time.Duration
}

// LoadConfig reads the rate limit settings from the environment, falling
// back to permissive defaults suitable for a single-user deployment.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled:         true,
		Limit:           120,
		Window:          time.Minute,
		CleanupInterval: 5 * time.Minute,
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.Enabled = v != "false" && v != "0"
	}
	if v := os.Getenv("RATE_LIMIT_PER_MINUTE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Limit = n
		}
	}
	return cfg
}

// Info reports the limiter's view of one decision.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Limiter tracks one token bucket per client.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  *Config

	cleanupTicker *time.Ticker
	cleanupStop   chan struct{}
}

// NewLimiter creates a limiter from the given config (nil means defaults).
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = LoadConfig()
	}
	if config.Burst <= 0 {
		config.Burst = config.Limit
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.cleanupTicker = time.NewTicker(config.CleanupInterval)
		l.cleanupStop = make(chan struct{})
		go l.cleanupLoop()
	}
	return l
}

// Allow consumes one token for the client if available.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{Allowed: true}
	}

	refillRate := float64(l.config.Limit) / l.config.Window.Seconds()
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.config.Burst), lastRefill: now}
		l.buckets[clientID] = b
	}

	elapsed := now.Sub(b.lastRefill)
	b.tokens = min(float64(l.config.Burst), b.tokens+elapsed.Seconds()*refillRate)
	b.lastRefill = now
	b.lastAccess = now

	info := Info{Limit: l.config.Limit}
	if b.tokens >= 1.0 {
		b.tokens -= 1.0
		info.Allowed = true
		info.Remaining = int(b.tokens)
		return true, info
	}

	info.Remaining = 0
	info.RetryAfter = time.Duration((1.0 - b.tokens) / refillRate * float64(time.Second))
	return false, info
}

// Stop halts the background cleanup goroutine.
func (l *Limiter) Stop() {
	if l.cleanupTicker != nil {
		l.cleanupTicker.Stop()
		close(l.cleanupStop)
	}
}

func (l *Limiter) cleanupLoop() {
	for {
		select {
		case <-l.cleanupTicker.C:
			l.removeStale()
		case <-l.cleanupStop:
			return
		}
	}
}

// removeStale drops buckets idle for over an hour so the map cannot grow
// without bound.
func (l *Limiter) removeStale() {
	cutoff := time.Now().Add(-1 * time.Hour)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastAccess.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}
