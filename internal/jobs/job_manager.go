package jobs

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orphanItemSweepJob *OrphanItemSweepJob
	logger             *slog.Logger
}

// NewJobManager creates a new job manager with all required jobs.
// An empty sweepSchedule disables the orphan item sweep.
func NewJobManager(
	sweepHandler OrphanItemSweeper,
	sweepSchedule string,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger}
	if sweepSchedule != "" {
		jm.orphanItemSweepJob = NewOrphanItemSweepJob(sweepHandler, sweepSchedule, registerer, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.orphanItemSweepJob == nil {
		jm.logger.Info("Orphan item sweep job disabled")
		return nil
	}

	if err := jm.orphanItemSweepJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphan item sweep job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.orphanItemSweepJob != nil {
		jm.orphanItemSweepJob.Stop()
	}
}
