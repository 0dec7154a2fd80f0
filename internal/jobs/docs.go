// Package jobs runs scheduled background tasks on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// ArchiveStalePackagesJob archives packages whose last change (createdAt or
// modifiedAt) is older than the configured retention. Each tick drains the backlog
// in batches, every batch in its own transaction, and rows locked by a concurrent
// run are skipped.
//
// # Usage
//
//	manager, err := jobs.NewJobManager(jobs.ArchiveConfig{
//		Schedule:  "0 */5 * * * *",
//		OlderThan: 30 * 24 * time.Hour,
//		BatchSize: 100,
//	}, archiveHandler, log)
//	if err != nil {
//		return err
//	}
//	manager.StartAll()
//	defer manager.StopAll(ctx)
//
// An empty schedule disables the job. Schedules take six fields, seconds first.
// Overlapping ticks are skipped rather than queued.
package jobs
