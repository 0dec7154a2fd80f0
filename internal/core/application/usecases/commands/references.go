package commands

import (
	"context"
	"fmt"

	"parcels/internal/pkg/errs"
)

type existsFunc func(ctx context.Context, id int64) (bool, error)

// requireExisting records a field violation for every id the store does not know.
// Storage failures abort the check.
func requireExisting(ctx context.Context, v *errs.ValidationError, field, entity string, id int64, exists existsFunc) error {
	ok, err := exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		v.Add(field, fmt.Sprintf("%s %d does not exist", entity, id))
	}
	return nil
}
