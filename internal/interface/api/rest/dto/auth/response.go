package auth

import (
	"image-hosting-api/internal/interface/api/rest/dto/user"
)

type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        user.User `json:"user"`
}
