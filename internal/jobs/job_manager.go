package jobs

import (
	"context"
	"errors"
	"fmt"

	"parcels/internal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// JobManager owns the scheduler and every job registered on it.
type JobManager struct {
	cron *cron.Cron
	log  *logger.Logger
	jobs int
}

// NewJobManager registers the archiver. A config without a schedule leaves the
// manager empty; StartAll and StopAll are then no-ops.
func NewJobManager(cfg ArchiveConfig, archiver StalePackageArchiver, log *logger.Logger) (*JobManager, error) {
	cl := cronLogger{log: log}
	jm := &JobManager{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		log: log,
	}

	job, err := NewArchiveStalePackagesJob(cfg, archiver, log)
	switch {
	case errors.Is(err, ErrEmptySchedule):
		log.Info(context.Background(), "stale package archiving is disabled")
		return jm, nil
	case err != nil:
		return nil, err
	}

	if _, err = jm.cron.AddFunc(cfg.Schedule, job.tick); err != nil {
		return nil, fmt.Errorf("invalid archive schedule %q: %w", cfg.Schedule, err)
	}
	jm.jobs++

	return jm, nil
}

// Jobs is the number of scheduled jobs.
func (jm *JobManager) Jobs() int {
	return jm.jobs
}

func (jm *JobManager) StartAll() {
	if jm.jobs == 0 {
		return
	}
	jm.cron.Start()
	jm.log.Info(context.Background(), "jobs started")
}

// StopAll stops the scheduler and waits for running jobs to finish or ctx to expire.
func (jm *JobManager) StopAll(ctx context.Context) {
	if jm.jobs == 0 {
		return
	}

	select {
	case <-jm.cron.Stop().Done():
		jm.log.Info(ctx, "jobs stopped")
	case <-ctx.Done():
		jm.log.Warn(ctx, "jobs did not stop in time")
	}
}
