package tasks

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool_RunsSubmittedTasks(t *testing.T) {
	p := NewPool(2, 10, time.Second)

	var count atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		ok := p.Submit("test", func(_ context.Context) {
			defer wg.Done()
			count.Add(1)
		})
		assert.True(t, ok)
	}
	wg.Wait()
	p.Stop()

	assert.Equal(t, int32(5), count.Load())
}

func TestPool_DropsWhenQueueFull(t *testing.T) {
	p := NewPool(1, 1, time.Second)
	defer p.Stop()

	block := make(chan struct{})
	started := make(chan struct{})

	// Occupy the single worker.
	p.Submit("blocker", func(_ context.Context) {
		close(started)
		<-block
	})
	<-started

	// Fill the queue, then overflow it.
	assert.True(t, p.Submit("queued", func(_ context.Context) {}))
	assert.False(t, p.Submit("overflow", func(_ context.Context) {}), "full queue drops the task")

	close(block)
}

func TestPool_RejectsAfterStop(t *testing.T) {
	p := NewPool(1, 4, time.Second)
	p.Stop()

	assert.False(t, p.Submit("late", func(_ context.Context) {
		t.Fatal("task must not run after stop")
	}))
}

func TestPool_StopDrainsQueue(t *testing.T) {
	p := NewPool(1, 10, time.Second)

	var count atomic.Int32
	for i := 0; i < 8; i++ {
		p.Submit("drain", func(_ context.Context) {
			count.Add(1)
		})
	}
	p.Stop()

	assert.Equal(t, int32(8), count.Load(), "queued tasks finish during shutdown")
}

func TestPool_StopIsIdempotent(t *testing.T) {
	p := NewPool(1, 1, time.Second)
	p.Stop()
	p.Stop()
}

func TestPool_SurvivesPanickingTask(t *testing.T) {
	p := NewPool(1, 4, time.Second)

	p.Submit("broken", func(_ context.Context) {
		panic("nil map write in an analytics task")
	})

	// The worker must still be alive to run the next task.
	done := make(chan struct{})
	assert.True(t, p.Submit("after", func(_ context.Context) {
		close(done)
	}))
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not recover from the panic")
	}
	p.Stop()
}

func TestPool_TaskTimeout(t *testing.T) {
	p := NewPool(1, 1, 10*time.Millisecond)

	done := make(chan struct{})
	p.Submit("slow", func(ctx context.Context) {
		<-ctx.Done()
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("task context was not cancelled by the timeout")
	}
	p.Stop()
}
