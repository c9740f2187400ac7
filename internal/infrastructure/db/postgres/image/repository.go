package image

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"image-hosting-api/internal/domain/image"
	"image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) image.Repository {
	return &Repository{db: db}
}

func (r *Repository) CreateImage(ctx context.Context, req *image.Image) (*image.Image, error) {
	img := new(Image)

	err := r.db.QueryRow(
		ctx,
		InsertImage,
		uint64(req.UserID), req.StorageKey, req.FileName, req.ContentType, req.SizeBytes, req.PublicURL,
	).Scan(
		&img.ID,
		&img.UserID,

		&img.StorageKey,
		&img.FileName,
		&img.ContentType,
		&img.SizeBytes,
		&img.PublicURL,

		&img.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, image.ErrDuplicateStorageKey
		}
		return nil, err
	}

	return fromDBModel(img), err
}

func (r *Repository) FetchImageByStorageKey(ctx context.Context, key string) (*image.Image, error) {
	img := new(Image)
	err := r.db.QueryRow(ctx, SelectImageByStorageKey, key).Scan(
		&img.ID,
		&img.UserID,

		&img.StorageKey,
		&img.FileName,
		&img.ContentType,
		&img.SizeBytes,
		&img.PublicURL,

		&img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(img), err
}

func (r *Repository) FetchImageByID(ctx context.Context, id image.ID, userID user.ID) (*image.Image, error) {
	img := new(Image)
	err := r.db.QueryRow(ctx, SelectImageByID, uint64(id), uint64(userID)).Scan(
		&img.ID,
		&img.UserID,

		&img.StorageKey,
		&img.FileName,
		&img.ContentType,
		&img.SizeBytes,
		&img.PublicURL,

		&img.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(img), err
}

func (r *Repository) FetchImages(ctx context.Context, userID user.ID, page, perPage int) (image.Images, error) {
	offset := (page - 1) * perPage

	rows, err := r.db.Query(ctx, SelectImages, uint64(userID), perPage, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var imgs Images
	for rows.Next() {
		img := new(Image)

		if err = rows.Scan(
			&img.ID,
			&img.UserID,

			&img.StorageKey,
			&img.FileName,
			&img.ContentType,
			&img.SizeBytes,
			&img.PublicURL,

			&img.CreatedAt,
		); err != nil {
			return nil, err
		}

		imgs = append(imgs, img)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&imgs), nil
}

func (r *Repository) CountImages(ctx context.Context, userID user.ID) (uint64, error) {
	var total uint64
	if err := r.db.QueryRow(ctx, CountImages, uint64(userID)).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}

func (r *Repository) DeleteImage(ctx context.Context, id image.ID, userID user.ID) error {
	tag, err := r.db.Exec(ctx, DeleteImageByID, uint64(id), uint64(userID))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return image.ErrNotFound
	}

	return nil
}
