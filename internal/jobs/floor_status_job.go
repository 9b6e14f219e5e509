package jobs

import (
	"context"
	"log/slog"

	"tableside/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// SubscriberCounter reports how many notification clients are connected.
// Satisfied by the websocket hub.
type SubscriberCounter interface {
	SubscriberCount() int
}

// FloorStatusJob periodically logs a heartbeat of the dining floor: how many
// tabs are open and how many devices are listening for updates. The log line
// is what operators watch to confirm the engine is alive during service.
type FloorStatusJob struct {
	handler     queries.GetActiveOrdersQueryHandler
	subscribers SubscriberCounter
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewFloorStatusJob creates a job reporting floor status every 30 seconds.
func NewFloorStatusJob(
	handler queries.GetActiveOrdersQueryHandler,
	subscribers SubscriberCounter,
	logger *slog.Logger,
) *FloorStatusJob {
	return &FloorStatusJob{
		handler:     handler,
		subscribers: subscribers,
		cron:        cron.New(cron.WithSeconds()),
		logger:      logger.With("component", "floor_status_job"),
	}
}

// Start begins the floor status job.
func (j *FloorStatusJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		orders, err := j.handler.Handle(ctx, queries.NewGetActiveOrdersQuery())
		if err != nil {
			j.logger.ErrorContext(ctx, "Floor status job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "Floor status",
			"open_tabs", len(orders),
			"connected_clients", j.subscribers.SubscriberCount(),
		)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Floor status job started (running every 30 seconds)")
	return nil
}

// Stop stops the floor status job.
func (j *FloorStatusJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Floor status job stopped")
}
