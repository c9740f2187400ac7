package user

import (
	domain "image-hosting-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           domain.ID(model.ID),
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,

		CreatedAt: model.CreatedAt,
	}

	return u
}
