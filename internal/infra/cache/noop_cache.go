package cache

import (
	"context"

	"tapadmin/internal/domain/entity"
	"tapadmin/internal/domain/service"
)

// noopCache always misses. It backs deployments without a Redis instance.
type noopCache struct{}

// NewNoopCache is the constructor for noopCache.
func NewNoopCache() service.AggregateCache {
	return &noopCache{}
}

func (noopCache) GetCustomerRows(context.Context) ([]*entity.CustomerRow, bool, error) {
	return nil, false, nil
}

func (noopCache) SetCustomerRows(context.Context, []*entity.CustomerRow) error {
	return nil
}

func (noopCache) InvalidateCustomerRows(context.Context) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
