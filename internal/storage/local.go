package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalService writes images under a directory on disk and returns relative
// URLs beneath baseURL ("/uploads" by default), to be served as static files.
type LocalService struct {
	root    string
	baseURL string
}

func NewLocalService(root, baseURL string) *LocalService {
	return &LocalService{
		root:    filepath.Clean(root),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

func (s *LocalService) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	clean, err := s.resolve(name)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(clean), 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := os.Create(clean)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(clean)
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close upload file: %w", err)
	}

	return s.baseURL + "/" + filepath.ToSlash(name), nil
}

func (s *LocalService) Remove(ctx context.Context, name string) error {
	clean, err := s.resolve(name)
	if err != nil {
		return err
	}
	if err := os.Remove(clean); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove upload file: %w", err)
	}
	return nil
}

// resolve rejects names escaping the storage root.
func (s *LocalService) resolve(name string) (string, error) {
	clean := filepath.Join(s.root, filepath.FromSlash(name))
	if rel, err := filepath.Rel(s.root, clean); err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("invalid upload name %q", name)
	}
	return clean, nil
}

var _ Service = (*LocalService)(nil)
