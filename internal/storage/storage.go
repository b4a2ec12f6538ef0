package storage

import (
	"context"
	"io"
)

// Service stores uploaded images and returns the URL under which the image
// is served. Name is a path relative to the storage root, e.g.
// "team/member_3_20240101_120000.jpg".
type Service interface {
	Save(ctx context.Context, name string, r io.Reader) (string, error)
	Remove(ctx context.Context, name string) error
}
