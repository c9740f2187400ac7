package ports

import (
	"context"

	"image-hosting-api/internal/domain/image"
)

// ObjectStorage is the entire surface the upload protocol needs from the
// store: presigned put, metadata-only stat, delete, and URL derivation.
type ObjectStorage interface {
	PresignUpload(ctx context.Context, key, contentType string) (string, error)
	// StatObject returns (nil, nil) when the key does not exist.
	StatObject(ctx context.Context, key string) (*image.ObjectInfo, error)
	// DeleteObject treats an already-absent key as success.
	DeleteObject(ctx context.Context, key string) error
	GetPublicURL(key string) string
	GetBucket() string
}
