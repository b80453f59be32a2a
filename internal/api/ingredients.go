package api

import (
	"encoding/base64"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pantrychef/backend/internal/logging"
	"github.com/pantrychef/backend/internal/service"
)

// maxPhotoSize caps uploads at 8 MiB, comfortably above typical phone photos.
const maxPhotoSize = 8 << 20

// DetectRequest is the JSON alternative to a multipart upload.
type DetectRequest struct {
	Image    string `json:"image" binding:"required"`
	MimeType string `json:"mime_type"`
}

type IngredientHandler struct {
	vision  *service.VisionService
	archive *service.PhotoArchive
}

func NewIngredientHandler(vision *service.VisionService, archive *service.PhotoArchive) *IngredientHandler {
	return &IngredientHandler{vision: vision, archive: archive}
}

func (h *IngredientHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	ingredients := router.Group("/ingredients")
	ingredients.Use(authRequired)
	{
		ingredients.POST("/detect", h.Detect)
	}
}

// Detect accepts a photo, multipart or base64 JSON, and returns the food
// ingredients visible in it. An empty list is a valid answer. The photo is
// archived to S3 on a best-effort basis.
func (h *IngredientHandler) Detect(c *gin.Context) {
	if h.vision == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "ingredient detection not configured"})
		return
	}

	imageData, contentType, ok := h.readPhoto(c)
	if !ok {
		return
	}

	format := imageFormat(contentType)
	if format == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported image type"})
		return
	}

	ingredients, err := h.vision.DetectIngredients(c.Request.Context(), imageData, format)
	if err != nil {
		logging.L().Error("ingredient detection failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to analyze photo"})
		return
	}
	if ingredients == nil {
		ingredients = []string{}
	}

	var photoURL string
	if h.archive != nil {
		url, err := h.archive.Archive(c.Request.Context(), imageData, contentType)
		if err != nil {
			logging.L().Warn("photo archive failed", zap.Error(err))
		} else {
			photoURL = url
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"ingredients": ingredients,
		"photo_url":   photoURL,
	})
}

// readPhoto extracts the image bytes and mime type from either a multipart
// form or a base64 JSON body. On failure it writes the error response and
// returns ok=false.
func (h *IngredientHandler) readPhoto(c *gin.Context) ([]byte, string, bool) {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req DetectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return nil, "", false
		}
		imageData, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "image must be base64 encoded"})
			return nil, "", false
		}
		if len(imageData) > maxPhotoSize {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large"})
			return nil, "", false
		}
		contentType := req.MimeType
		if contentType == "" {
			contentType = "image/jpeg"
		}
		return imageData, contentType, true
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return nil, "", false
	}
	if fileHeader.Size > maxPhotoSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "photo too large"})
		return nil, "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return nil, "", false
	}
	defer file.Close()

	imageData, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo"})
		return nil, "", false
	}

	return imageData, fileHeader.Header.Get("Content-Type"), true
}

func imageFormat(contentType string) string {
	switch contentType {
	case "image/jpeg", "image/jpg":
		return "jpeg"
	case "image/png":
		return "png"
	case "image/webp":
		return "webp"
	case "image/heic":
		return "heic"
	default:
		return ""
	}
}
