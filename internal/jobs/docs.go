// Package jobs provides scheduled background tasks of the order service.
//
// OrphanItemSweepJob removes order_items rows whose order header is gone. It runs
// on a robfig/cron scheduler and is started and stopped through JobManager:
//
//	jobManager := jobs.NewJobManager(sweepHandler, cfg.OrphanSweepSchedule, registry, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		return err
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are cron expressions with a leading seconds field, for example
// "0 */10 * * * *" for every ten minutes. An empty schedule disables the job.
//
// A failed run is logged and counted in
// skate_order_service_orphan_sweep_runs_total, and the job waits for its next tick. If one job fails to start, the ones already running are stopped.
package jobs
