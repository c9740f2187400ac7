package ports

import (
	"context"

	"image-hosting-api/internal/domain/image"
	"image-hosting-api/internal/domain/user"
)

type ImageService interface {
	RequestUpload(ctx context.Context, userID user.ID, filename, contentType string) (*image.UploadSlot, error)
	ConfirmUpload(ctx context.Context, userID user.ID, req image.ConfirmRequest) (*image.Image, error)
	FindImages(ctx context.Context, userID user.ID, page, perPage int) (image.Images, uint64, error)
	FindImageByID(ctx context.Context, userID user.ID, id image.ID) (*image.Image, error)
	DeleteImage(ctx context.Context, userID user.ID, id image.ID) error
}
