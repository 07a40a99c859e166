// Package storage provides the file storage port for uploaded résumés.
// Two implementations exist: local disk for development and MinIO for
// S3-compatible object storage. Both return an opaque path reference that is
// recorded on the lead.
package storage

import (
	"context"
	"io"
)

// Storage persists an uploaded file and returns its reference.
type Storage interface {
	// Save writes the file bytes under the given name and returns the
	// reference to store. Size may be passed as -1 when unknown.
	Save(ctx context.Context, r io.Reader, size int64, name string) (string, error)
}
