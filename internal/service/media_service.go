package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"company-cms/internal/domain"
	"company-cms/internal/storage"
)

// allowedImageExts is the extension allow-list for uploaded images.
var allowedImageExts = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

// ImageUpdater is the slice of a repository the media service needs: record
// the stored URL on the entity.
type ImageUpdater interface {
	SetImageURL(ctx context.Context, id int64, url string) error
}

// MediaService validates and stores entity images.
type MediaService struct {
	store storage.Service
	now   func() time.Time
}

func NewMediaService(store storage.Service) *MediaService {
	return &MediaService{
		store: store,
		now:   time.Now,
	}
}

// UploadImage stores the file under a deterministic collision-resistant name
// (resource, entity id, timestamp, original extension) and records the
// resulting URL on the entity. The extension allow-list is checked before
// anything touches storage.
func (m *MediaService) UploadImage(ctx context.Context, repo ImageUpdater, resource string, id int64, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(path.Ext(filename))
	if _, ok := allowedImageExts[ext]; !ok {
		return "", fmt.Errorf("%w: invalid file type, allowed: jpg, jpeg, png, webp, gif", domain.ErrInvalidInput)
	}

	name := fmt.Sprintf("%s/%s_%d_%s%s", resource, resource, id, m.now().UTC().Format("20060102_150405"), ext)
	url, err := m.store.Save(ctx, name, r)
	if err != nil {
		return "", err
	}

	if err := repo.SetImageURL(ctx, id, url); err != nil {
		// entity gone or store failure: do not leave the orphan file behind
		_ = m.store.Remove(ctx, name)
		return "", err
	}
	return url, nil
}
