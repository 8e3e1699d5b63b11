// Package cleanup provides the background retention sweep.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/trykin/spark/pkg/config"
)

// SessionExpirer ends active conversations whose session window has
// lapsed. Satisfied by *services.SessionService.
type SessionExpirer interface {
	ExpireStale(ctx context.Context) (int, error)
}

// EventPruner deletes analytics events older than a cutoff. Satisfied
// by *services.EventService.
type EventPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Service periodically enforces retention:
//   - Expires stale active conversations that Resolve never saw again
//   - Removes analytics events past their retention window
//
// Both sweeps are idempotent and safe to run from multiple replicas.
type Service struct {
	cfg      *config.Settings
	sessions SessionExpirer
	events   EventPruner
	logger   *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new retention sweep service.
func NewService(cfg *config.Settings, sessions SessionExpirer, events EventPruner, logger *slog.Logger) *Service {
	return &Service{
		cfg:      cfg,
		sessions: sessions,
		events:   events,
		logger:   logger,
	}
}

// Start launches the background sweep loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"interval", s.cfg.CleanupInterval,
		"event_retention", s.cfg.EventRetention)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.cfg.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.expireStaleSessions(ctx)
	s.pruneOldEvents(ctx)
}

func (s *Service) expireStaleSessions(ctx context.Context) {
	count, err := s.sessions.ExpireStale(ctx)
	if err != nil {
		s.logger.Error("Retention: expire stale sessions failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: expired stale sessions", "count", count)
	}
}

func (s *Service) pruneOldEvents(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-s.cfg.EventRetention)
	count, err := s.events.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		s.logger.Error("Retention: event cleanup failed", "error", err)
		return
	}
	if count > 0 {
		s.logger.Info("Retention: pruned old events", "count", count)
	}
}
