package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when no blob exists under the requested key.
var ErrObjectNotFound = errors.New("object not found")

// ObjectInfo describes a stored blob.
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// FileStorage persists uploaded binaries.
type FileStorage interface {
	// Save streams r into the blob stored under name and returns what was written.
	Save(ctx context.Context, name string, r io.Reader, contentType string) (*ObjectInfo, error)

	// Open returns a reader for the blob stored under name. Callers close the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, *ObjectInfo, error)
}
