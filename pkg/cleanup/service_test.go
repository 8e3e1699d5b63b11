package cleanup

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trykin/spark/pkg/config"
)

type fakeExpirer struct {
	mu    sync.Mutex
	calls int
	count int
	err   error
}

func (f *fakeExpirer) ExpireStale(ctx context.Context) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	return f.count, f.err
}

func (f *fakeExpirer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakePruner struct {
	mu     sync.Mutex
	calls  int
	cutoff time.Time
}

func (f *fakePruner) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.cutoff = cutoff
	return 0, nil
}

func (f *fakePruner) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakePruner) lastCutoff() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.cutoff
}

func testService(expirer *fakeExpirer, pruner *fakePruner) *Service {
	cfg := &config.Settings{
		CleanupInterval: time.Hour,
		EventRetention:  90 * 24 * time.Hour,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(cfg, expirer, pruner, logger)
}

func TestService_RunsSweepsOnStart(t *testing.T) {
	expirer := &fakeExpirer{count: 3}
	pruner := &fakePruner{}
	svc := testService(expirer, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return expirer.callCount() >= 1 && pruner.callCount() >= 1
	}, time.Second, 10*time.Millisecond)

	cutoff := pruner.lastCutoff()
	assert.WithinDuration(t, time.Now().UTC().Add(-90*24*time.Hour), cutoff, time.Minute)
}

func TestService_SweepFailureDoesNotStopLoop(t *testing.T) {
	expirer := &fakeExpirer{err: context.DeadlineExceeded}
	pruner := &fakePruner{}
	svc := testService(expirer, pruner)

	svc.Start(context.Background())
	defer svc.Stop()

	// The event sweep still runs after the session sweep fails.
	require.Eventually(t, func() bool {
		return pruner.callCount() >= 1
	}, time.Second, 10*time.Millisecond)
}

func TestService_StopIsIdempotent(t *testing.T) {
	svc := testService(&fakeExpirer{}, &fakePruner{})

	// Stop before Start is a no-op.
	svc.Stop()

	svc.Start(context.Background())
	svc.Stop()
	svc.Stop()
}
