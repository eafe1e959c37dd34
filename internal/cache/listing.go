// Package cache carries the view-invalidation signal: after a
// successful invoice mutation the cached listing rendering is dropped.
package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const invoiceListingKey = "views:dashboard:invoices"

type ListingCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewListingCache(rdb *redis.Client, log *zap.Logger) *ListingCache {
	return &ListingCache{rdb: rdb, log: log}
}

// InvalidateInvoiceListing drops the cached invoice listing. A cache
// failure is logged but never fails the mutation that triggered it.
func (c *ListingCache) InvalidateInvoiceListing(ctx context.Context) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, invoiceListingKey).Err(); err != nil {
		c.log.Warn("failed to invalidate invoice listing", zap.Error(err))
	}
}
