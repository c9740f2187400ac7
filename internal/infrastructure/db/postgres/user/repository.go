package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.ID) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByID, uint64(id)).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) FetchUserByLogin(ctx context.Context, login string) (*user.User, error) {
	u := new(User)
	err := r.db.QueryRow(ctx, SelectUserByLogin, login).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := r.db.QueryRow(
		ctx,
		InsertUser,
		req.Username, req.Email, req.PasswordHash,
	).Scan(
		&u.ID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,

		&u.CreatedAt,
	)
	if err != nil {
		switch postgres.UniqueConstraintName(err) {
		case "users_username_key":
			return nil, user.ErrUsernameTaken
		case "users_email_key":
			return nil, user.ErrEmailTaken
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrUsernameTaken
		}
		return nil, err
	}

	return fromDBModel(u), err
}
