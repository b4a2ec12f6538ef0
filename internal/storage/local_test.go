package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSaveAndRemove(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	svc := NewLocalService(root, "/uploads")
	ctx := context.Background()

	url, err := svc.Save(ctx, "services/services_1_x.png", strings.NewReader("data"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/services/services_1_x.png", url)

	data, err := os.ReadFile(filepath.Join(root, "services", "services_1_x.png"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))

	require.NoError(t, svc.Remove(ctx, "services/services_1_x.png"))
	_, err = os.Stat(filepath.Join(root, "services", "services_1_x.png"))
	assert.True(t, os.IsNotExist(err))

	// Removing something already gone is not an error.
	assert.NoError(t, svc.Remove(ctx, "services/services_1_x.png"))
}

func TestLocalRejectsEscapingNames(t *testing.T) {
	t.Parallel()

	svc := NewLocalService(t.TempDir(), "/uploads")
	ctx := context.Background()

	_, err := svc.Save(ctx, "../escape.png", strings.NewReader("data"))
	assert.Error(t, err)

	_, err = svc.Save(ctx, "a/../../escape.png", strings.NewReader("data"))
	assert.Error(t, err)

	assert.Error(t, svc.Remove(ctx, "../escape.png"))
}
