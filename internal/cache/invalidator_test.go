package cache

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) ([]byte, error) { return nil, ErrMiss }
func (failingStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("store down")
}
func (failingStore) Delete(ctx context.Context, key string) error { return errors.New("store down") }
func (failingStore) DeletePrefix(ctx context.Context, prefix string) error {
	return errors.New("store down")
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestInvalidatorEntity(t *testing.T) {
	t.Parallel()

	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, Key("projects", 3), []byte("one"), time.Minute))
	require.NoError(t, m.Set(ctx, CollectionKey("projects"), []byte("list"), time.Minute))
	require.NoError(t, m.Set(ctx, CollectionKey("team"), []byte("team"), time.Minute))

	NewInvalidator(m, quietLogger()).Entity(ctx, "projects", 3)

	_, err := m.Get(ctx, Key("projects", 3))
	assert.ErrorIs(t, err, ErrMiss)
	_, err = m.Get(ctx, CollectionKey("projects"))
	assert.ErrorIs(t, err, ErrMiss)

	_, err = m.Get(ctx, CollectionKey("team"))
	assert.NoError(t, err)
}

func TestInvalidatorSwallowsStoreErrors(t *testing.T) {
	t.Parallel()

	inv := NewInvalidator(failingStore{}, quietLogger())

	// Must not panic or propagate the failure.
	inv.Entity(context.Background(), "services", 1)
	inv.Collection(context.Background(), "services")
}
