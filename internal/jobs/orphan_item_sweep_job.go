package jobs

import (
	"context"
	"log/slog"

	"skate/internal/core/application/usecases/commands"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
)

// OrphanItemSweeper removes order items without an order header.
type OrphanItemSweeper interface {
	Handle(ctx context.Context, cmd commands.SweepOrphanItemsCommand) (int64, error)
}

// OrphanItemSweepJob periodically removes dangling order items.
type OrphanItemSweepJob struct {
	handler  OrphanItemSweeper
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger

	runs    *prometheus.CounterVec
	removed prometheus.Counter
}

// NewOrphanItemSweepJob creates the sweep job and registers its collectors with registerer.
func NewOrphanItemSweepJob(
	handler OrphanItemSweeper,
	schedule string,
	registerer prometheus.Registerer,
	logger *slog.Logger,
) *OrphanItemSweepJob {
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "skate",
		Subsystem: "order_service",
		Name:      "orphan_sweep_runs_total",
		Help:      "Orphan item sweep runs by result.",
	}, []string{"result"})
	removed := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "skate",
		Subsystem: "order_service",
		Name:      "orphan_items_removed_total",
		Help:      "Order items removed because their order no longer exists.",
	})
	registerer.MustRegister(runs, removed)

	return &OrphanItemSweepJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "orphan_item_sweep_job"),
		runs:     runs,
		removed:  removed,
	}
}

// Start schedules the sweep. An invalid schedule is returned as an error.
func (j *OrphanItemSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("Orphan item sweep job started", "schedule", j.schedule)
	return nil
}

// RunOnce performs a single sweep and reports how many items were removed.
func (j *OrphanItemSweepJob) RunOnce(ctx context.Context) int64 {
	removed, err := j.handler.Handle(ctx, commands.NewSweepOrphanItemsCommand())
	if err != nil {
		j.runs.WithLabelValues("error").Inc()
		j.logger.ErrorContext(ctx, "Orphan item sweep job failed", "error", err)
		return 0
	}

	j.runs.WithLabelValues("ok").Inc()
	j.removed.Add(float64(removed))
	if removed > 0 {
		j.logger.WarnContext(ctx, "Orphan order items removed", "count", removed)
	}
	return removed
}

// Stop stops scheduling and waits for a running sweep to finish.
func (j *OrphanItemSweepJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Orphan item sweep job stopped")
}
