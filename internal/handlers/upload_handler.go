package handlers

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"glowmart/internal/apperr"
	"glowmart/internal/middleware"
	"glowmart/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadHandler stores product images on local disk and returns the URLs
// they are served under. There is no image processing; storage beyond a
// plain directory is out of scope.
type UploadHandler struct {
	authService *services.AuthService
	uploadDir   string
}

// NewUploadHandler creates a new UploadHandler writing into uploadDir.
func NewUploadHandler(authService *services.AuthService, uploadDir string) *UploadHandler {
	return &UploadHandler{
		authService: authService,
		uploadDir:   uploadDir,
	}
}

// RegisterRoutes registers the upload routes with the Fiber app.
func (h *UploadHandler) RegisterRoutes(router fiber.Router) {
	uploadRoutes := router.Group("/upload", middleware.AuthRequired(h.authService), middleware.AdminRequired())
	uploadRoutes.Post("/images", h.HandleUploadImages)
}

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// HandleUploadImages accepts a multipart form with one or more "images"
// files and responds with their public URLs.
func (h *UploadHandler) HandleUploadImages(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		return respondError(c, apperr.Wrap(apperr.KindValidation, err, "multipart form with an 'images' field is required"))
	}

	files := form.File["images"]
	if len(files) == 0 {
		return respondError(c, apperr.Validation("at least one image file is required"))
	}

	var urls []string
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			return respondError(c, apperr.Validation("unsupported image type %q", ext))
		}
		name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
		dest := filepath.Join(h.uploadDir, name)
		if err := c.SaveFile(file, dest); err != nil {
			log.Printf("Error saving uploaded image %s: %v", file.Filename, err)
			return respondError(c, apperr.Internal(err, "failed to store image"))
		}
		urls = append(urls, "/uploads/"+name)
	}

	return respondData(c, fiber.StatusCreated, fiber.Map{"urls": urls})
}
