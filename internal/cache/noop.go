package cache

import (
	"context"
	"time"
)

// Noop is the null store: every read misses and every write succeeds without
// doing anything. It keeps call sites identical whether or not a real cache
// backend is attached.
type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) Get(ctx context.Context, key string) ([]byte, error) { return nil, ErrMiss }

func (Noop) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error { return nil }

func (Noop) Delete(ctx context.Context, key string) error { return nil }

func (Noop) DeletePrefix(ctx context.Context, prefix string) error { return nil }
