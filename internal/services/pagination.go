package services

import (
	"context"

	"go.uber.org/zap"

	"eventmanager/internal/models/request_models"
	"eventmanager/pkg/utils"
)

// findPage validates p, then returns one page and the total row count.
func findPage[T any](
	ctx context.Context,
	logger *zap.Logger,
	p request_models.PaginationRequest,
	count func(context.Context) (int64, error),
	page func(context.Context, request_models.PaginationRequest) ([]T, error),
) ([]T, int64, error) {
	if err := p.Validate(); err != nil {
		return nil, 0, err
	}

	total, err := count(ctx)
	if err != nil {
		logger.Error("count failed", zap.Error(err))
		return nil, 0, utils.DatabaseError(err)
	}

	items, err := page(ctx, p)
	if err != nil {
		logger.Error("page query failed", zap.Int("page", p.Page), zap.Int("size", p.Size), zap.Error(err))
		return nil, 0, utils.DatabaseError(err)
	}
	return items, total, nil
}

func uniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
