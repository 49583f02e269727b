package ports

import (
	"context"
	"io"
)

// UploadInput groups parameters for ObjectStore.Upload.
type UploadInput struct {
	Key         string
	ContentType string
	Body        io.Reader
}

// ObjectStore stores job images and serves them by public URL.
type ObjectStore interface {
	// Upload stores an object and returns its public URL.
	Upload(ctx context.Context, in UploadInput) (string, error)

	// Download retrieves an object's content. The caller closes the reader.
	Download(ctx context.Context, key string) (io.ReadCloser, error)

	// PublicURL returns the public URL for a stored object.
	PublicURL(key string) string
}
