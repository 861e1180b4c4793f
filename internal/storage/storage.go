package storage

import (
	"context"
	"io"
)

// ObjectStore uploads image files and returns their public URL.
type ObjectStore interface {
	// Put stores the object under a generated key and returns the URL it is
	// served from. The URL is stable for the lifetime of the object.
	Put(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}
