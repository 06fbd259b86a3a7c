package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllow_WithinBurst(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 5, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed, "request %d should be allowed", i+1)
	}

	allowed, info := l.Allow("client-a")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsIsolated(t *testing.T) {
	l := NewLimiter(&Config{Enabled: true, Limit: 1, Window: time.Minute})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	// A different client has its own bucket.
	allowed, _ = l.Allow("client-b")
	assert.True(t, allowed)
}

func TestAllow_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false, Limit: 1, Window: time.Minute})
	defer l.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("client-a")
		assert.True(t, allowed)
	}
}

func TestAllow_Refills(t *testing.T) {
	// 600 per minute = 10 per second, so one token comes back fast.
	l := NewLimiter(&Config{Enabled: true, Limit: 600, Window: time.Minute, Burst: 1})
	defer l.Stop()

	allowed, _ := l.Allow("client-a")
	require.True(t, allowed)
	allowed, _ = l.Allow("client-a")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)
	allowed, _ = l.Allow("client-a")
	assert.True(t, allowed)
}
