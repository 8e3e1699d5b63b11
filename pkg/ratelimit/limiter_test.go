package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	l := New()

	for i := 0; i < 30; i++ {
		assert.True(t, l.Allow(Key("client-a", "1.2.3.4"), 30), "request %d should be admitted", i+1)
	}
	assert.False(t, l.Allow(Key("client-a", "1.2.3.4"), 30), "request 31 should be rejected")
}

func TestLimiter_WindowSlides(t *testing.T) {
	l := New()
	current := time.Now()
	l.setNow(func() time.Time { return current })

	key := Key("client-a", "1.2.3.4")
	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(key, 5))
	}
	assert.False(t, l.Allow(key, 5))

	// 61 seconds later the oldest timestamps have aged out.
	current = current.Add(61 * time.Second)
	assert.True(t, l.Allow(key, 5))
}

func TestLimiter_RejectedRequestsNotRecorded(t *testing.T) {
	l := New()
	key := Key("client-a", "1.2.3.4")

	assert.True(t, l.Allow(key, 1))
	// Hammering while rejected must not extend the window.
	for i := 0; i < 10; i++ {
		assert.False(t, l.Allow(key, 1))
	}

	l.mu.Lock()
	n := len(l.windows[key])
	l.mu.Unlock()
	assert.Equal(t, 1, n)
}

func TestLimiter_KeysAreIndependent(t *testing.T) {
	l := New()

	assert.True(t, l.Allow(Key("client-a", "1.2.3.4"), 1))
	assert.False(t, l.Allow(Key("client-a", "1.2.3.4"), 1))

	// Different ip, different tenant, and the admin namespace are
	// all separate windows.
	assert.True(t, l.Allow(Key("client-a", "5.6.7.8"), 1))
	assert.True(t, l.Allow(Key("client-b", "1.2.3.4"), 1))
	assert.True(t, l.Allow(AdminKey("deadbeef"), 1))
}

func TestLimiter_Reset(t *testing.T) {
	l := New()
	key := Key("client-a", "1.2.3.4")

	assert.True(t, l.Allow(key, 1))
	assert.False(t, l.Allow(key, 1))

	l.Reset()
	assert.True(t, l.Allow(key, 1))
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	l := New()
	var wg sync.WaitGroup

	admitted := make(chan bool, 200)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			admitted <- l.Allow(Key("client-a", "1.2.3.4"), 100)
		}()
	}
	wg.Wait()
	close(admitted)

	count := 0
	for ok := range admitted {
		if ok {
			count++
		}
	}
	assert.Equal(t, 100, count)
}
