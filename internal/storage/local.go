package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalDisk stores files under a root directory on the local filesystem.
type LocalDisk struct {
	root string
}

// NewLocalDisk creates a local disk store rooted at the given directory.
func NewLocalDisk(root string) *LocalDisk {
	return &LocalDisk{root: root}
}

// Save writes the file under the upload root, creating it if missing, and
// returns the joined path as the stored reference.
func (s *LocalDisk) Save(_ context.Context, r io.Reader, _ int64, name string) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("create upload root %s: %w", s.root, err)
	}

	path := filepath.Join(s.root, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("write upload file %s: %w", path, err)
	}

	return path, nil
}

var _ Storage = (*LocalDisk)(nil)
