package model

import (
	"context"
	"io"
)

// PreviewHandle is a revocable reference to preview bytes.
type PreviewHandle string

// PreviewStore issues and releases preview handles for compressed images.
type PreviewStore interface {
	Create(ctx context.Context, name string, data []byte) (PreviewHandle, error)
	Release(ctx context.Context, handle PreviewHandle) error
}

// ObjectStorage stores opaque objects by key.
type ObjectStorage interface {
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	Delete(ctx context.Context, key string) error
}
