package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"image-hosting-api/internal/application/ports"
	domain "image-hosting-api/internal/domain/image"
	"image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/mq"
	imageDTO "image-hosting-api/internal/interface/api/rest/dto/image"
)

const keyTokenBytes = 16 // 128 bits of entropy

type ImageService struct {
	storage         ports.ObjectStorage
	imageRepository domain.Repository
	mq              ports.RabbitMQ
	mCounter        *prometheus.CounterVec
}

func NewImageService(
	storage ports.ObjectStorage,
	imageRepository domain.Repository,
	rabbit ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ImageService {
	return &ImageService{
		storage:         storage,
		imageRepository: imageRepository,
		mq:              rabbit,
		mCounter:        mCounter,
	}
}

// AllocateStorageKey derives "{user_id}/{token}.{ext}". Only the filename's
// final dot-suffix survives into the key; everything else the client sent
// is display data and never touches storage paths. Call once per upload
// attempt: a retry gets a fresh key.
func AllocateStorageKey(userID user.ID, filename string) string {
	buf := make([]byte, keyTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing means the process is unusable anyway
		panic(err)
	}

	return fmt.Sprintf("%d/%s.%s", userID, hex.EncodeToString(buf), extensionOf(filename))
}

func extensionOf(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 || idx == len(filename)-1 {
		return domain.DefaultExtension
	}
	return strings.ToLower(filename[idx+1:])
}

func keyOwnedBy(key string, userID user.ID) bool {
	return strings.HasPrefix(key, strconv.FormatUint(uint64(userID), 10)+"/")
}

// RequestUpload allocates a key and presigns a single PUT against it.
// Nothing is persisted: the metadata row appears only after confirmation.
func (is *ImageService) RequestUpload(
	ctx context.Context,
	userID user.ID,
	filename, contentType string,
) (*domain.UploadSlot, error) {
	key := AllocateStorageKey(userID, filename)

	uploadURL, err := is.storage.PresignUpload(ctx, key, contentType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	is.mCounter.WithLabelValues("upload_urls_issued_total").Inc()

	return &domain.UploadSlot{
		UploadURL:  uploadURL,
		StorageKey: key,
		PublicURL:  is.storage.GetPublicURL(key),
	}, nil
}

// ConfirmUpload verifies the client's claim against the store and only then
// writes the metadata row. The order is load-bearing: stat first, insert
// second, so a row can never describe an object that was not there.
func (is *ImageService) ConfirmUpload(
	ctx context.Context,
	userID user.ID,
	req domain.ConfirmRequest,
) (*domain.Image, error) {
	if !keyOwnedBy(req.StorageKey, userID) {
		return nil, domain.ErrInvalidStorageKey
	}

	info, err := is.storage.StatObject(ctx, req.StorageKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}
	if info == nil {
		return nil, domain.ErrObjectNotFound
	}

	// the store is authoritative; the client's declared size is only
	// accepted when it matches exactly
	if info.SizeBytes != req.SizeBytes {
		return nil, domain.ErrSizeMismatch
	}
	if !domain.ContentTypeAllowed(info.ContentType) {
		return nil, domain.ErrContentTypeRejected
	}

	img, err := is.imageRepository.CreateImage(ctx, &domain.Image{
		UserID:      userID,
		StorageKey:  req.StorageKey,
		FileName:    req.FileName,
		ContentType: info.ContentType,
		SizeBytes:   info.SizeBytes,
		PublicURL:   is.storage.GetPublicURL(req.StorageKey),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateStorageKey) {
			// a retried confirmation is not an error: hand back the row the
			// first attempt created
			existing, ferr := is.imageRepository.FetchImageByStorageKey(ctx, req.StorageKey)
			if ferr != nil {
				return nil, ferr
			}
			if existing == nil || existing.UserID != userID {
				return nil, domain.ErrInvalidStorageKey
			}
			return existing, nil
		}
		return nil, err
	}

	is.publishEvent(http.MethodPost, img)
	is.mCounter.WithLabelValues("images_confirmed_total").Inc()

	return img, nil
}

func (is *ImageService) FindImages(
	ctx context.Context,
	userID user.ID,
	page, perPage int,
) (domain.Images, uint64, error) {
	imgs, err := is.imageRepository.FetchImages(ctx, userID, page, perPage)
	if err != nil {
		return nil, 0, err
	}

	total, err := is.imageRepository.CountImages(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	return imgs, total, nil
}

func (is *ImageService) FindImageByID(
	ctx context.Context,
	userID user.ID,
	id domain.ID,
) (*domain.Image, error) {
	img, err := is.imageRepository.FetchImageByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if img == nil {
		return nil, domain.ErrNotFound
	}

	return img, nil
}

// DeleteImage removes the object first and the row second. A failed object
// delete leaves the row in place: a broken public URL is a user-visible
// bug, an orphaned object is just reclaimable storage.
func (is *ImageService) DeleteImage(
	ctx context.Context,
	userID user.ID,
	id domain.ID,
) error {
	img, err := is.imageRepository.FetchImageByID(ctx, id, userID)
	if err != nil {
		return err
	}
	if img == nil {
		return domain.ErrNotFound
	}

	if err = is.storage.DeleteObject(ctx, img.StorageKey); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageDeleteFailed, err)
	}

	if err = is.imageRepository.DeleteImage(ctx, id, userID); err != nil {
		return err
	}

	is.publishEvent(http.MethodDelete, img)
	is.mCounter.WithLabelValues("images_deleted_total").Inc()

	return nil
}

func (is *ImageService) publishEvent(method string, img *domain.Image) {
	is.mq.GetInputChan() <- mq.Event{
		Id:      uuid.New(),
		TS:      time.Now(),
		Method:  method,
		UserID:  strconv.FormatUint(uint64(img.UserID), 10),
		Payload: imageDTO.ToResponseImage(*img),
	}
}
