package service

import (
	"context"
	"io"
)

// StoredObject is an open stored image.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// ImageStorage stores uploaded images and returns their public URL.
type ImageStorage interface {
	// Save writes data under key and returns the public URL.
	Save(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Open reads a stored object. The caller closes Body.
	Open(ctx context.Context, key string) (*StoredObject, error)
}
