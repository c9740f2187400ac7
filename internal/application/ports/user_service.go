package ports

import (
	"context"

	"image-hosting-api/internal/domain/user"
)

type UserService interface {
	Register(ctx context.Context, username, email, passwordHash string) (*user.User, error)
	FindByLogin(ctx context.Context, login string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.ID) (*user.User, error)
}
