package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"image-hosting-api/internal/application/ports"
	"image-hosting-api/internal/application/services"
	domainUser "image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/jwt"
	"image-hosting-api/internal/interface/api/rest/dto/auth"
	userDTO "image-hosting-api/internal/interface/api/rest/dto/user"
	"image-hosting-api/internal/interface/api/rest/middleware"
	"image-hosting-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.POST(RouteRegister, ac.RegisterHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.GET(RouteMe, middleware.AuthMiddleware(jwtService), ac.MeHandler)

	return ac
}

func (ac *AuthController) RegisterHandler(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateRegister(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	hash, err := ac.authService.HashPassword(req.Password)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("HashPassword() error", zap.Error(err))
		return
	}

	u, err := ac.userService.Register(c.Request.Context(), req.Username, req.Email, hash)
	if err != nil {
		if errors.Is(err, domainUser.ErrUsernameTaken) || errors.Is(err, domainUser.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("Register() error", zap.Error(err))
		return
	}

	token, err := ac.authService.IssueToken(u)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to register"},
		)
		ac.logger.Error("IssueToken() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusCreated, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        userDTO.ToResponseUser(*u),
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	if errs := validator.ValidateLogin(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	u, err := ac.userService.FindByLogin(c.Request.Context(), req.Login)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByLogin() error", zap.Error(err))
		return
	}
	if u == nil {
		// same message as a bad password: don't confirm which accounts exist
		c.JSON(
			http.StatusUnauthorized,
			gin.H{"error": "incorrect login or password"},
		)
		return
	}

	token, err := ac.authService.GenerateToken(u, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect login or password"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to login"})
		ac.logger.Error("GenerateToken() error", zap.Error(err), zap.Uint64("user_id", uint64(u.ID)))
		return
	}

	c.JSON(http.StatusOK, auth.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User:        userDTO.ToResponseUser(*u),
	})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	id, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	u, err := ac.userService.FindUserByID(c.Request.Context(), domainUser.ID(id))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindUserByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}
