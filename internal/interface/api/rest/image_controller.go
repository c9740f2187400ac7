package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"image-hosting-api/internal/application/ports"
	domain "image-hosting-api/internal/domain/image"
	domainUser "image-hosting-api/internal/domain/user"
	"image-hosting-api/internal/infrastructure/jwt"
	imageDTO "image-hosting-api/internal/interface/api/rest/dto/image"
	"image-hosting-api/internal/interface/api/rest/middleware"
	"image-hosting-api/internal/interface/api/rest/validator"
)

type ImageController struct {
	imageService ports.ImageService
	logger       *zap.Logger
}

func NewImageController(
	r *gin.Engine,
	imageService ports.ImageService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *ImageController {
	ic := &ImageController{
		imageService: imageService,
		logger:       logger,
	}

	authed := middleware.AuthMiddleware(jwtService)
	r.POST(RouteImageUploadURL, authed, ic.UploadURLHandler)
	r.POST(RouteImageConfirm, authed, ic.ConfirmHandler)
	r.GET(RouteImages, authed, ic.GetImagesHandler)
	r.GET(RouteImage, authed, ic.GetImageHandler)
	r.DELETE(RouteImage, authed, ic.DeleteImageHandler)

	return ic
}

func (ic *ImageController) UploadURLHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req imageDTO.UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errs := validator.ValidateUploadRequest(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	slot, err := ic.imageService.RequestUpload(c.Request.Context(), domainUser.ID(userID), req.FileName, req.ContentType)
	if err != nil {
		if errors.Is(err, domain.ErrStorageUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
			ic.logger.Error("RequestUpload() storage error", zap.Error(err))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create upload url"})
		ic.logger.Error("RequestUpload() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, imageDTO.ToUploadSlotResponse(*slot))
}

func (ic *ImageController) ConfirmHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	var req imageDTO.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json"})
		return
	}
	if errs := validator.ValidateConfirm(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"details": errs,
		})
		return
	}

	img, err := ic.imageService.ConfirmUpload(c.Request.Context(), domainUser.ID(userID), imageDTO.ToDomainConfirm(req))
	if err != nil {
		ic.confirmError(c, err)
		return
	}

	c.JSON(http.StatusCreated, imageDTO.ToResponseImage(*img))
}

func (ic *ImageController) confirmError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidStorageKey):
		c.JSON(http.StatusForbidden, gin.H{"error": "invalid storage key"})
	case errors.Is(err, domain.ErrObjectNotFound):
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not found in storage, upload may have failed"})
	case errors.Is(err, domain.ErrSizeMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "declared size does not match uploaded object"})
	case errors.Is(err, domain.ErrContentTypeRejected):
		c.JSON(http.StatusBadRequest, gin.H{"error": "uploaded object has a disallowed content type"})
	case errors.Is(err, domain.ErrStorageUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "storage unavailable, retry later"})
		ic.logger.Error("ConfirmUpload() storage error", zap.Error(err))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm upload"})
		ic.logger.Error("ConfirmUpload() error", zap.Error(err))
	}
}

func (ic *ImageController) GetImagesHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	page, err := validator.ValidatePage(c.Query("page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	perPage, err := validator.ValidatePerPage(c.Query("per_page"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imgs, total, err := ic.imageService.FindImages(c.Request.Context(), domainUser.ID(userID), page, perPage)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get images"},
		)
		ic.logger.Error("FindImages() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, imageDTO.ListResponse{
		Images:  imageDTO.ToResponseImages(imgs),
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func (ic *ImageController) GetImageHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id, err := validator.ParseImageID(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	img, err := ic.imageService.FindImageByID(c.Request.Context(), domainUser.ID(userID), domain.ID(id))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get image"})
		ic.logger.Error("FindImageByID() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, imageDTO.ToResponseImage(*img))
}

func (ic *ImageController) DeleteImageHandler(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	id, err := validator.ParseImageID(c.Param("image_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err = ic.imageService.DeleteImage(c.Request.Context(), domainUser.ID(userID), domain.ID(id)); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
		case errors.Is(err, domain.ErrStorageDeleteFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "storage delete failed, image left intact"})
			ic.logger.Error("DeleteImage() storage error", zap.Error(err))
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete image"})
			ic.logger.Error("DeleteImage() error", zap.Error(err))
		}
		return
	}

	c.Status(http.StatusNoContent)
}
