package image

import (
	domain "image-hosting-api/internal/domain/image"
)

func ToResponseImage(imgDomain domain.Image) Image {
	var img = Image{
		ID:          uint64(imgDomain.ID),
		FileName:    imgDomain.FileName,
		ContentType: imgDomain.ContentType,
		SizeBytes:   imgDomain.SizeBytes,
		StorageKey:  imgDomain.StorageKey,
		PublicURL:   imgDomain.PublicURL,
		CreatedAt:   imgDomain.CreatedAt,
	}

	return img
}

func ToResponseImages(imgsDomain domain.Images) Images {
	imgs := make(Images, len(imgsDomain))
	for idx, img := range imgsDomain {
		imgs[idx] = ToResponseImage(*img)
	}

	return imgs
}

func ToUploadSlotResponse(slot domain.UploadSlot) UploadURLResponse {
	return UploadURLResponse{
		UploadURL:  slot.UploadURL,
		StorageKey: slot.StorageKey,
		PublicURL:  slot.PublicURL,
	}
}

func ToDomainConfirm(req ConfirmRequest) domain.ConfirmRequest {
	return domain.ConfirmRequest{
		StorageKey:  req.StorageKey,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
	}
}
