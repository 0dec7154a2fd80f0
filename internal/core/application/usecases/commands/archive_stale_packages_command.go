package commands

import (
	"errors"
	"fmt"
	"time"

	"parcels/internal/pkg/errs"
	"parcels/internal/pkg/guard"
)

var ErrArchiveStalePackagesCommandIsNotConstructed = errors.New(
	"ArchiveStalePackagesCommand must be created via NewArchiveStalePackagesCommand constructor",
)

// ArchiveStalePackagesCommand archives packages nobody has touched for olderThan.
// It is issued by the scheduler, not by an API caller, so it carries no kernel.Caller.
type ArchiveStalePackagesCommand struct {
	olderThan time.Duration
	batchSize int

	guard guard.ConstructorGuard
}

func NewArchiveStalePackagesCommand(olderThan time.Duration, batchSize int) (ArchiveStalePackagesCommand, error) {
	if olderThan <= 0 {
		return ArchiveStalePackagesCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", fmt.Errorf("%s is not a positive duration", olderThan))
	}
	if batchSize <= 0 {
		return ArchiveStalePackagesCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batchSize", fmt.Errorf("%d is not greater than 0", batchSize))
	}

	return ArchiveStalePackagesCommand{
		olderThan: olderThan,
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveStalePackagesCommand) Validate() error {
	return c.guard.Validate(ErrArchiveStalePackagesCommandIsNotConstructed)
}

func (c ArchiveStalePackagesCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c ArchiveStalePackagesCommand) BatchSize() int {
	return c.batchSize
}
