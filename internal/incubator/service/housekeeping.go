package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/PadsterH2012/Idea-Incubator/internal/incubator/store"
)

// HousekeepingService periodically purges expired session rows so the
// sessions table does not grow without bound. Expired sessions are already
// invisible to Validate; this just reclaims the storage.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the service. A non-positive interval
// defaults to 1 hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Non-blocking; call Stop to shut down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop shuts the worker down, blocking until any in-progress sweep finishes.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Sweep immediately on startup.
	s.sweep()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *HousekeepingService) sweep() {
	ctx := context.Background()
	if err := s.Store.Sessions().DeleteExpiredSessions(ctx, time.Now().UTC()); err != nil {
		s.Logger.Error("failed to delete expired sessions", "error", err)
		return
	}
	s.Logger.Debug("expired sessions purged")
}
