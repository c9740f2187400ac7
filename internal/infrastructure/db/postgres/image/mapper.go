package image

import (
	domain "image-hosting-api/internal/domain/image"
	"image-hosting-api/internal/domain/user"
)

func fromDBModel(model *Image) *domain.Image {
	var img = &domain.Image{
		ID:     domain.ID(model.ID),
		UserID: user.ID(model.UserID),

		StorageKey:  model.StorageKey,
		FileName:    model.FileName,
		ContentType: model.ContentType,
		SizeBytes:   model.SizeBytes,
		PublicURL:   model.PublicURL,

		CreatedAt: model.CreatedAt,
	}

	return img
}

func fromDBModels(models *Images) domain.Images {
	imgs := make(domain.Images, len(*models))
	for idx, m := range *models {
		imgs[idx] = fromDBModel(m)
	}

	return imgs
}
