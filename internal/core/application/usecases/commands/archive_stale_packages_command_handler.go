package commands

import (
	"context"
)

type ArchiveStalePackagesCommandHandler struct {
	uowFactory PackageUoWFactory
	now        Clock
}

func NewArchiveStalePackagesCommandHandler(uowFactory PackageUoWFactory, now Clock) ArchiveStalePackagesCommandHandler {
	return ArchiveStalePackagesCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

// Handle archives one batch of stale packages and returns how many were archived.
func (h ArchiveStalePackagesCommandHandler) Handle(ctx context.Context, cmd ArchiveStalePackagesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.now()
	packageRepo := uow.PackageRepository()

	stale, err := packageRepo.FindStale(ctx, now.Add(-cmd.OlderThan()), cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Archive(now); err != nil {
			return 0, err
		}
		if err = packageRepo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
