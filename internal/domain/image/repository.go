package image

import (
	"context"

	"image-hosting-api/internal/domain/user"
)

type Repository interface {
	// CreateImage inserts a metadata row. Returns ErrDuplicateStorageKey
	// when the storage_key unique constraint fires; that constraint, not
	// application locking, arbitrates racing confirmations.
	CreateImage(ctx context.Context, req *Image) (*Image, error)
	FetchImageByStorageKey(ctx context.Context, key string) (*Image, error)
	// FetchImageByID is owner-scoped: a row owned by another user reads as absent.
	FetchImageByID(ctx context.Context, id ID, userID user.ID) (*Image, error)
	FetchImages(ctx context.Context, userID user.ID, page, perPage int) (Images, error)
	CountImages(ctx context.Context, userID user.ID) (uint64, error)
	DeleteImage(ctx context.Context, id ID, userID user.ID) error
}
