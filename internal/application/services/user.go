package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"image-hosting-api/internal/application/ports"
	domain "image-hosting-api/internal/domain/user"
)

type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

// Register persists a new account. Username/email uniqueness is enforced by
// the DB constraints; the repository translates violations into
// ErrUsernameTaken / ErrEmailTaken.
func (us *UserService) Register(ctx context.Context, username, email, passwordHash string) (*domain.User, error) {
	u, err := us.userRepository.CreateUser(ctx, domain.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("users_registered_total").Inc()

	return u, nil
}

func (us *UserService) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return u, nil
}
