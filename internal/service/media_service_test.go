package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-cms/internal/domain"
	"company-cms/internal/storage"
)

type recordingUpdater struct {
	id  int64
	url string
	err error
}

func (r *recordingUpdater) SetImageURL(ctx context.Context, id int64, url string) error {
	if r.err != nil {
		return r.err
	}
	r.id = id
	r.url = url
	return nil
}

func newMedia(t *testing.T) (*MediaService, *storage.LocalService) {
	t.Helper()

	store := storage.NewLocalService(t.TempDir(), "/uploads")
	m := NewMediaService(store)
	m.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	}
	return m, store
}

func TestUploadImage(t *testing.T) {
	t.Parallel()

	m, _ := newMedia(t)
	updater := &recordingUpdater{}

	url, err := m.UploadImage(context.Background(), updater, "projects", 7, "site photo.JPG", strings.NewReader("fake-image"))
	require.NoError(t, err)

	assert.Equal(t, "/uploads/projects/projects_7_20260314_150926.jpg", url)
	assert.EqualValues(t, 7, updater.id)
	assert.Equal(t, url, updater.url)
}

func TestUploadImageRejectsExtension(t *testing.T) {
	t.Parallel()

	m, _ := newMedia(t)
	updater := &recordingUpdater{}

	_, err := m.UploadImage(context.Background(), updater, "projects", 7, "malware.exe", strings.NewReader("nope"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, updater.url)
}

func TestUploadImageCleansUpWhenUpdateFails(t *testing.T) {
	t.Parallel()

	m, store := newMedia(t)
	updater := &recordingUpdater{err: domain.ErrNotFound}

	_, err := m.UploadImage(context.Background(), updater, "team", 3, "face.png", strings.NewReader("fake-image"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// The orphan file was removed, so removing it again is a no-op.
	assert.NoError(t, store.Remove(context.Background(), "team/team_3_20260314_150926.png"))
}
