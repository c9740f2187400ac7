package ports

import (
	"image-hosting-api/internal/domain/user"
)

type Auth interface {
	HashPassword(password string) (string, error)
	// GenerateToken verifies the password first; IssueToken does not and is
	// for flows where the caller just proved identity (registration).
	GenerateToken(u *user.User, requestPassword string) (string, error)
	IssueToken(u *user.User) (string, error)
}
