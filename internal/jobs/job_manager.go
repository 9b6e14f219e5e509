package jobs

import (
	"fmt"
	"log/slog"

	"tableside/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	floorStatusJob *FloorStatusJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	subscribers SubscriberCounter,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		floorStatusJob: NewFloorStatusJob(getActiveOrdersHandler, subscribers, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.floorStatusJob.Start(); err != nil {
		return fmt.Errorf("failed to start floor status job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.floorStatusJob.Stop()
}
