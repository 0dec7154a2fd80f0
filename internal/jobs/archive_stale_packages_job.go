package jobs

import (
	"context"
	"errors"
	"time"

	"parcels/internal/core/application/usecases/commands"
	"parcels/internal/pkg/logger"

	"go.uber.org/zap"
)

var ErrEmptySchedule = errors.New("archive schedule is empty")

// ArchiveConfig controls the stale package archiver.
type ArchiveConfig struct {
	Schedule  string
	OlderThan time.Duration
	BatchSize int
	// MaxBatches caps one tick so a huge backlog cannot hold the scheduler forever.
	MaxBatches int
}

// StalePackageArchiver is satisfied by commands.ArchiveStalePackagesCommandHandler.
type StalePackageArchiver interface {
	Handle(ctx context.Context, cmd commands.ArchiveStalePackagesCommand) (int, error)
}

type ArchiveStalePackagesJob struct {
	handler StalePackageArchiver
	cmd     commands.ArchiveStalePackagesCommand
	cfg     ArchiveConfig
	log     *logger.Logger
}

func NewArchiveStalePackagesJob(
	cfg ArchiveConfig,
	handler StalePackageArchiver,
	log *logger.Logger,
) (*ArchiveStalePackagesJob, error) {
	if cfg.Schedule == "" {
		return nil, ErrEmptySchedule
	}

	cmd, err := commands.NewArchiveStalePackagesCommand(cfg.OlderThan, cfg.BatchSize)
	if err != nil {
		return nil, err
	}

	if cfg.MaxBatches <= 0 {
		cfg.MaxBatches = 100
	}

	return &ArchiveStalePackagesJob{
		handler: handler,
		cmd:     cmd,
		cfg:     cfg,
		log:     log.With(zap.String("component", "archive_stale_packages_job")),
	}, nil
}

// Run archives batches until one comes back short, the batch cap is hit, or ctx
// is done. It returns the number of archived packages.
func (j *ArchiveStalePackagesJob) Run(ctx context.Context) (int, error) {
	total := 0

	for range j.cfg.MaxBatches {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		archived, err := j.handler.Handle(ctx, j.cmd)
		total += archived
		if err != nil {
			return total, err
		}
		if archived < j.cfg.BatchSize {
			break
		}
	}

	return total, nil
}

func (j *ArchiveStalePackagesJob) tick() {
	ctx := logger.NewRequestIDContext(context.Background(), "")

	archived, err := j.Run(ctx)
	if err != nil {
		j.log.Error(ctx, "archiving stale packages failed", zap.Error(err), zap.Int("archived", archived))
		return
	}
	if archived > 0 {
		j.log.Info(ctx, "stale packages archived", zap.Int("archived", archived))
	}
}
