package handlers

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/dto"
	"github.com/mdazmalmallick17-glitch/gamehub/internal/services"
)

// UploadHandler accepts image uploads and serves stored files. It knows
// nothing about which entity an upload will be attached to; association
// happens in a later request.
type UploadHandler struct {
	uploadService *services.UploadService
	dir           string
	fallbackDir   string
}

func NewUploadHandler(uploadService *services.UploadService, dir, fallbackDir string) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, dir: dir, fallbackDir: fallbackDir}
}

func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "No file provided",
		})
	}

	maxBytes := int64(services.MaxImageBytes)
	if c.Query("kind") == "avatar" {
		maxBytes = services.MaxAvatarBytes
	}

	url, err := h.uploadService.SaveImage(fh, maxBytes)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, services.ErrInvalidFileType), errors.Is(err, services.ErrNoFile):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error: true, Message: "Upload failed",
			})
		}
	}

	return c.JSON(dto.UploadResponse{URL: url})
}

// ServeFile serves an uploaded file from the primary upload dir, falling
// back to the secondary location on a miss. Names are flattened to their
// base so path traversal goes nowhere.
func (h *UploadHandler) ServeFile(c *fiber.Ctx) error {
	name := filepath.Base(c.Params("filename"))

	primary := filepath.Join(h.dir, name)
	if _, err := os.Stat(primary); err == nil {
		return c.SendFile(primary)
	}

	fallback := filepath.Join(h.fallbackDir, name)
	if _, err := os.Stat(fallback); err == nil {
		return c.SendFile(fallback)
	}

	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
		Error: true, Message: "File not found",
	})
}
