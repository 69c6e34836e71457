package service

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// SnapshotScheduler captures a portfolio snapshot on a cron schedule. An
// empty schedule disables it entirely.
type SnapshotScheduler struct {
	cron     *cron.Cron
	snapshot *SnapshotService
	schedule string
}

// NewSnapshotScheduler creates a scheduler that registers automatic
// snapshots via the given service.
func NewSnapshotScheduler(snapshot *SnapshotService, schedule string) *SnapshotScheduler {
	return &SnapshotScheduler{
		cron:     cron.New(),
		snapshot: snapshot,
		schedule: schedule,
	}
}

// Start registers the cron entry and begins scheduling. Returns an error
// when the cron spec cannot be parsed.
func (s *SnapshotScheduler) Start() error {
	if s.schedule == "" {
		return nil
	}

	_, err := s.cron.AddFunc(s.schedule, func() {
		g, err := s.snapshot.CaptureCurrent(context.Background(), "Snapshot automático")
		if err != nil {
			log.Printf("automatic snapshot failed: %v", err)
			return
		}
		log.Printf("automatic snapshot registered: %s (%d items)", g.ID, len(g.Items))
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("snapshot scheduler started with schedule %q", s.schedule)
	return nil
}

// Stop halts scheduling and waits for a running capture to finish.
func (s *SnapshotScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
