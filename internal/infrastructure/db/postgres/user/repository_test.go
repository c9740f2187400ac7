package user

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "image-hosting-api/internal/domain/user"
)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()
	req := domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$hash"}

	t.Run("success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
			WithArgs("alice", "alice@example.com", "$2a$hash").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(
				uint64(7), "alice", "alice@example.com", "$2a$hash", time.Now(),
			))

		repo := NewRepository(mock)
		u, err := repo.CreateUser(ctx, req)
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(7), u.ID)
		assert.Equal(t, "alice", u.Username)
	})

	constraintCases := []struct {
		name       string
		constraint string
		wantErr    error
	}{
		{"username constraint", "users_username_key", domain.ErrUsernameTaken},
		{"email constraint", "users_email_key", domain.ErrEmailTaken},
	}
	for _, tt := range constraintCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock := newMock(t)
			mock.ExpectQuery(regexp.QuoteMeta(InsertUser)).
				WithArgs("alice", "alice@example.com", "$2a$hash").
				WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: tt.constraint})

			repo := NewRepository(mock)
			u, err := repo.CreateUser(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, u)
		})
	}
}

func TestFetchUserByLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("found by email", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByLogin)).
			WithArgs("alice@example.com").
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(
				uint64(7), "alice", "alice@example.com", "$2a$hash", time.Now(),
			))

		repo := NewRepository(mock)
		u, err := repo.FetchUserByLogin(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(7), u.ID)
	})

	t.Run("unknown login reads as absent", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectQuery(regexp.QuoteMeta(SelectUserByLogin)).
			WithArgs("nobody").
			WillReturnRows(pgxmock.NewRows(userColumns))

		repo := NewRepository(mock)
		u, err := repo.FetchUserByLogin(ctx, "nobody")
		require.NoError(t, err)
		assert.Nil(t, u)
	})
}

func TestFetchUserByID_Absent(t *testing.T) {
	mock := newMock(t)
	mock.ExpectQuery(regexp.QuoteMeta(SelectUserByID)).
		WithArgs(uint64(99)).
		WillReturnRows(pgxmock.NewRows(userColumns))

	repo := NewRepository(mock)
	u, err := repo.FetchUserByID(context.Background(), 99)
	require.NoError(t, err)
	assert.Nil(t, u)
}
