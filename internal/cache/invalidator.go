package cache

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Invalidator is the coordination layer between mutations and the cache
// store. Store errors are logged and swallowed so a broken cache backend
// never fails the mutation that triggered invalidation.
type Invalidator struct {
	store  Store
	logger *logrus.Logger
}

func NewInvalidator(store Store, logger *logrus.Logger) *Invalidator {
	return &Invalidator{store: store, logger: logger}
}

// Entity drops the detail key of one entity plus the whole collection family
// (filtered list pages cache under the collection prefix).
func (i *Invalidator) Entity(ctx context.Context, resource string, id int64) {
	if err := i.store.Delete(ctx, Key(resource, id)); err != nil {
		i.logger.Warnf("cache invalidate %s/%d: %v", resource, id, err)
	}
	i.Collection(ctx, resource)
}

// Collection drops every cached page of a resource family.
func (i *Invalidator) Collection(ctx context.Context, resource string) {
	if err := i.store.DeletePrefix(ctx, CollectionKey(resource)); err != nil {
		i.logger.Warnf("cache invalidate %s: %v", resource, err)
	}
}
