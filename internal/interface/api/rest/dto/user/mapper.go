package user

import (
	"image-hosting-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uint64(uDomain.ID),
		Username:  uDomain.Username,
		Email:     uDomain.Email,
		CreatedAt: uDomain.CreatedAt,
	}

	return u
}
