package services

import (
	"errors"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"

	"image-hosting-api/internal/application/ports"
	"image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/jwt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrFailedToGenerateToken = errors.New("failed to generate token")
)

type AuthService struct {
	jwtService *jwt.Service
	tokenTTL   time.Duration
}

func NewAuthService(
	jwtService *jwt.Service,
	tokenTTL time.Duration,

) ports.Auth {
	return &AuthService{
		jwtService: jwtService,
		tokenTTL:   tokenTTL,
	}
}

func (as *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (as *AuthService) GenerateToken(u *user.User, requestPassword string) (string, error) {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(requestPassword))
	if err != nil {
		return "", ErrInvalidCredentials
	}

	return as.IssueToken(u)
}

func (as *AuthService) IssueToken(u *user.User) (string, error) {
	token, err := as.jwtService.GenerateJWT(strconv.FormatUint(uint64(u.ID), 10), as.tokenTTL)
	if err != nil {
		return "", ErrFailedToGenerateToken
	}

	return token, nil
}
