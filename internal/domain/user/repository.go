package user

import (
	"context"
)

type Repository interface {
	FetchUserByID(ctx context.Context, id ID) (*User, error)
	// FetchUserByLogin resolves either a username or an email.
	FetchUserByLogin(ctx context.Context, login string) (*User, error)
	CreateUser(ctx context.Context, req User) (*User, error)
}
