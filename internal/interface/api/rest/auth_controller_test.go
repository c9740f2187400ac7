package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"image-hosting-api/internal/application/services"
	domainUser "image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/jwt"
)

const testJWTSecret = "test-secret"

type fakeUserService struct {
	register     func(ctx context.Context, username, email, passwordHash string) (*domainUser.User, error)
	findByLogin  func(ctx context.Context, login string) (*domainUser.User, error)
	findUserByID func(ctx context.Context, id domainUser.ID) (*domainUser.User, error)
}

func (f *fakeUserService) Register(ctx context.Context, username, email, passwordHash string) (*domainUser.User, error) {
	return f.register(ctx, username, email, passwordHash)
}
func (f *fakeUserService) FindByLogin(ctx context.Context, login string) (*domainUser.User, error) {
	return f.findByLogin(ctx, login)
}
func (f *fakeUserService) FindUserByID(ctx context.Context, id domainUser.ID) (*domainUser.User, error) {
	return f.findUserByID(ctx, id)
}

type fakeAuthService struct {
	hashPassword  func(password string) (string, error)
	generateToken func(u *domainUser.User, requestPassword string) (string, error)
	issueToken    func(u *domainUser.User) (string, error)
}

func (f *fakeAuthService) HashPassword(password string) (string, error) {
	return f.hashPassword(password)
}
func (f *fakeAuthService) GenerateToken(u *domainUser.User, requestPassword string) (string, error) {
	return f.generateToken(u, requestPassword)
}
func (f *fakeAuthService) IssueToken(u *domainUser.User) (string, error) {
	return f.issueToken(u)
}

func signTestJWT(t *testing.T, userID string) string {
	t.Helper()
	tok, err := jwt.New(testJWTSecret).GenerateJWT(userID, time.Hour)
	require.NoError(t, err)
	return tok
}

func newAuthTestRouter(us *fakeUserService, as *fakeAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewAuthController(r, zap.NewNop(), us, as, jwt.New(testJWTSecret))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, target, body, bearer string) *httptest.ResponseRecorder {
	t.Helper()
	var rdr *bytes.Reader
	if body != "" {
		rdr = bytes.NewReader([]byte(body))
	} else {
		rdr = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, rdr)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	okUser := &fakeUserService{
		register: func(_ context.Context, username, email, hash string) (*domainUser.User, error) {
			return &domainUser.User{
				ID: 7, Username: username, Email: email, PasswordHash: hash, CreatedAt: created,
			}, nil
		},
	}
	okAuth := &fakeAuthService{
		hashPassword: func(p string) (string, error) { return "$2a$hash", nil },
		issueToken:   func(u *domainUser.User) (string, error) { return "signed-token", nil },
	}

	tests := []struct {
		name       string
		body       string
		us         *fakeUserService
		as         *fakeAuthService
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			body:       `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			us:         okUser,
			as:         okAuth,
			wantStatus: http.StatusCreated,
			wantBody:   `"access_token":"signed-token"`,
		},
		{
			name:       "invalid json",
			body:       `{"username":`,
			us:         okUser,
			as:         okAuth,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid json"`,
		},
		{
			name:       "validation failure",
			body:       `{"username":"al","email":"alice@example.com","password":"password123"}`,
			us:         okUser,
			as:         okAuth,
			wantStatus: http.StatusBadRequest,
			wantBody:   `"username"`,
		},
		{
			name: "username taken",
			body: `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			us: &fakeUserService{
				register: func(_ context.Context, _, _, _ string) (*domainUser.User, error) {
					return nil, domainUser.ErrUsernameTaken
				},
			},
			as:         okAuth,
			wantStatus: http.StatusBadRequest,
			wantBody:   domainUser.ErrUsernameTaken.Error(),
		},
		{
			name: "email taken",
			body: `{"username":"alice","email":"alice@example.com","password":"password123"}`,
			us: &fakeUserService{
				register: func(_ context.Context, _, _, _ string) (*domainUser.User, error) {
					return nil, domainUser.ErrEmailTaken
				},
			},
			as:         okAuth,
			wantStatus: http.StatusBadRequest,
			wantBody:   domainUser.ErrEmailTaken.Error(),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthTestRouter(tt.us, tt.as)
			w := doJSON(t, r, http.MethodPost, RouteRegister, tt.body, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}

	t.Run("response carries token type and user profile", func(t *testing.T) {
		r := newAuthTestRouter(okUser, okAuth)
		w := doJSON(t, r, http.MethodPost, RouteRegister,
			`{"username":"alice","email":"alice@example.com","password":"password123"}`, "")

		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Bearer", resp["token_type"])

		u, ok := resp["user"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice", u["username"])
		assert.Equal(t, "alice@example.com", u["email"])
		assert.NotContains(t, w.Body.String(), "$2a$hash", "password hash must never leak")
	})
}

func TestLoginHandler(t *testing.T) {
	stored := &domainUser.User{ID: 7, Username: "alice", Email: "alice@example.com", PasswordHash: "$2a$hash"}

	tests := []struct {
		name       string
		body       string
		us         *fakeUserService
		as         *fakeAuthService
		wantStatus int
		wantBody   string
	}{
		{
			name: "success by username",
			body: `{"login":"alice","password":"password123"}`,
			us: &fakeUserService{
				findByLogin: func(_ context.Context, login string) (*domainUser.User, error) {
					return stored, nil
				},
			},
			as: &fakeAuthService{
				generateToken: func(u *domainUser.User, pw string) (string, error) { return "signed-token", nil },
			},
			wantStatus: http.StatusOK,
			wantBody:   `"access_token":"signed-token"`,
		},
		{
			name: "unknown login",
			body: `{"login":"nobody","password":"password123"}`,
			us: &fakeUserService{
				findByLogin: func(_ context.Context, _ string) (*domainUser.User, error) {
					return nil, nil
				},
			},
			as:         &fakeAuthService{},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "incorrect login or password",
		},
		{
			name: "wrong password uses the same message as unknown login",
			body: `{"login":"alice","password":"wrong"}`,
			us: &fakeUserService{
				findByLogin: func(_ context.Context, _ string) (*domainUser.User, error) {
					return stored, nil
				},
			},
			as: &fakeAuthService{
				generateToken: func(_ *domainUser.User, _ string) (string, error) {
					return "", services.ErrInvalidCredentials
				},
			},
			wantStatus: http.StatusUnauthorized,
			wantBody:   "incorrect login or password",
		},
		{
			name:       "missing fields",
			body:       `{}`,
			us:         &fakeUserService{},
			as:         &fakeAuthService{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid request body",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newAuthTestRouter(tt.us, tt.as)
			w := doJSON(t, r, http.MethodPost, RouteLogin, tt.body, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestMeHandler(t *testing.T) {
	us := &fakeUserService{
		findUserByID: func(_ context.Context, id domainUser.ID) (*domainUser.User, error) {
			if id == 7 {
				return &domainUser.User{ID: 7, Username: "alice", Email: "alice@example.com"}, nil
			}
			return nil, nil
		},
	}

	t.Run("authenticated", func(t *testing.T) {
		r := newAuthTestRouter(us, &fakeAuthService{})
		w := doJSON(t, r, http.MethodGet, RouteMe, "", "Bearer "+signTestJWT(t, "7"))

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"username":"alice"`)
	})

	t.Run("token subject no longer exists", func(t *testing.T) {
		r := newAuthTestRouter(us, &fakeAuthService{})
		w := doJSON(t, r, http.MethodGet, RouteMe, "", "Bearer "+signTestJWT(t, "99"))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "user not found")
	})

	t.Run("missing header", func(t *testing.T) {
		r := newAuthTestRouter(us, &fakeAuthService{})
		w := doJSON(t, r, http.MethodGet, RouteMe, "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "missing Authorization header")
	})

	t.Run("not a bearer scheme", func(t *testing.T) {
		r := newAuthTestRouter(us, &fakeAuthService{})
		w := doJSON(t, r, http.MethodGet, RouteMe, "", "Basic abc")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token format")
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		foreign, err := jwt.New("other-secret").GenerateJWT("7", time.Hour)
		require.NoError(t, err)

		r := newAuthTestRouter(us, &fakeAuthService{})
		w := doJSON(t, r, http.MethodGet, RouteMe, "", "Bearer "+foreign)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "invalid token")
	})

	t.Run("non numeric subject", func(t *testing.T) {
		r := newAuthTestRouter(us, &fakeAuthService{})
		w := doJSON(t, r, http.MethodGet, RouteMe, "", "Bearer "+signTestJWT(t, "abc"))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
