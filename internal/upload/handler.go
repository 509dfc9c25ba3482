package upload

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studio-backend/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

const maxImageSize = 10 << 20 // 10 MB

// ImageHandler stores an uploaded image under a fresh uuid name and returns
// the URL it is served from.
func ImageHandler(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := c.FormFile("image")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Image file is required")
		}
		if fileHeader.Size > maxImageSize {
			return fiber.NewError(fiber.StatusBadRequest, "Image must be 10MB or smaller")
		}

		ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
		if !allowedExtensions[ext] {
			return fiber.NewError(fiber.StatusBadRequest, "Unsupported image type")
		}

		if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not prepare upload directory")
		}

		filename := uuid.NewString() + ext
		dest := filepath.Join(cfg.UploadDir, filename)
		if err := c.SaveFile(fileHeader, dest); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save image")
		}

		url := fmt.Sprintf("%s/uploads/%s", strings.TrimRight(cfg.PublicBaseURL, "/"), filename)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"url":      url,
			"filename": filename,
		})
	}
}
