// Package cache defines the response cache contract and its invalidation
// coordinator. The store is advisory: correctness never depends on it, and a
// failing or absent backend must not fail the calling mutation.
package cache

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// ErrMiss is returned by Get when the key is not cached.
var ErrMiss = errors.New("cache miss")

// Store is the backing cache. Two granularities of deletion exist: Delete
// for one entity key and DeletePrefix for a whole collection family.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeletePrefix(ctx context.Context, prefix string) error
}

// Key builds the detail key for one entity of a resource family.
func Key(resource string, id int64) string {
	return CollectionKey(resource) + ":" + strconv.FormatInt(id, 10)
}

// CollectionKey builds the prefix under which all cached pages of a resource
// family live.
func CollectionKey(resource string) string {
	return "cache:" + resource
}
