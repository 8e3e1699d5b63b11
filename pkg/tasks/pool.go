// Package tasks runs fire-and-forget work — analytics writes, boundary
// counter bumps, CRM syncs — on a small bounded worker pool so the
// request path never blocks on them and load spikes can't spawn
// unbounded goroutines.
package tasks

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Task is one unit of background work.
type Task = func(ctx context.Context)

// Pool is a bounded fire-and-forget worker pool. Submissions that
// don't fit the queue are dropped with a log line; the work it carries
// is allowed to lose at-most-one on crash, so dropping under pressure
// is acceptable too.
type Pool struct {
	queue       chan Task
	taskTimeout time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewPool creates and starts a pool with the given worker count and
// queue depth.
func NewPool(workers, queueDepth int, taskTimeout time.Duration) *Pool {
	if workers < 1 {
		workers = 1
	}
	if queueDepth < 1 {
		queueDepth = 1
	}

	p := &Pool{
		queue:       make(chan Task, queueDepth),
		taskTimeout: taskTimeout,
		stopCh:      make(chan struct{}),
	}

	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		select {
		case <-p.stopCh:
			// Drain what's already queued before exiting.
			for {
				select {
				case task := <-p.queue:
					p.run(task)
				default:
					return
				}
			}
		case task := <-p.queue:
			p.run(task)
		}
	}
}

func (p *Pool) run(task Task) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Background task panicked", "panic", r)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), p.taskTimeout)
	defer cancel()
	task(ctx)
}

// Submit enqueues a task. Returns false when the queue is full or the
// pool is stopped; the task is dropped in both cases.
func (p *Pool) Submit(name string, task Task) bool {
	select {
	case <-p.stopCh:
		slog.Warn("Background task dropped, pool stopped", "task", name)
		return false
	default:
	}

	select {
	case p.queue <- task:
		return true
	default:
		slog.Warn("Background task dropped, queue full", "task", name)
		return false
	}
}

// Stop rejects new submissions, lets workers drain the queue, and
// waits for them to finish. Safe to call more than once.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
}
