package queries

import (
	"context"

	"parcels/internal/core/domain/model/kernel"
	"parcels/internal/core/domain/model/parcel"
	"parcels/internal/core/domain/services"
	"parcels/internal/core/ports"
	"parcels/internal/pkg/logger"

	"go.uber.org/zap"
)

// ListStatusesQueryHandler returns the seeded statuses. The table never changes at
// runtime so the result is kept in the optional cache; cache failures are logged
// and fall through to the store.
type ListStatusesQueryHandler struct {
	statuses ports.StatusRepository
	cache    ports.StatusCache
	policy   services.AccessPolicy
}

// NewListStatusesQueryHandler accepts a nil cache.
func NewListStatusesQueryHandler(
	statuses ports.StatusRepository,
	cache ports.StatusCache,
	policy services.AccessPolicy,
) ListStatusesQueryHandler {
	return ListStatusesQueryHandler{statuses: statuses, cache: cache, policy: policy}
}

func (h ListStatusesQueryHandler) Handle(ctx context.Context, caller kernel.Caller) ([]parcel.Status, error) {
	if err := h.policy.Authorize(caller, services.OpStatusList); err != nil {
		return nil, err
	}

	if h.cache != nil {
		cached, ok, err := h.cache.Get(ctx)
		if err != nil {
			logger.Log(ctx).Warn(ctx, "status cache read failed", zap.Error(err))
		}
		if ok {
			return cached, nil
		}
	}

	statuses, err := h.statuses.List(ctx)
	if err != nil {
		return nil, err
	}

	if h.cache != nil {
		if err = h.cache.Set(ctx, statuses); err != nil {
			logger.Log(ctx).Warn(ctx, "status cache write failed", zap.Error(err))
		}
	}

	return statuses, nil
}
