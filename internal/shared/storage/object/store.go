// Package object abstracts binary object storage for archived resume
// uploads and their derived text.
package object

import (
	"context"
	"io"
)

// ObjectStore defines the contract for saving and retrieving binary objects.
type ObjectStore interface {
	Save(ctx context.Context, namespace string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
