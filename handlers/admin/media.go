package admin

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/akademika/campus-api/services/storage"
	"github.com/akademika/campus-api/utils/pdfvalidation"
	"github.com/akademika/campus-api/utils/response"
	"github.com/gofiber/fiber/v2"
)

const maxImageSizeMB = 10

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// MediaHandler manages uploads to object storage
type MediaHandler struct {
	spaces *storage.SpacesClient
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(spaces *storage.SpacesClient) *MediaHandler {
	return &MediaHandler{spaces: spaces}
}

// UploadImage stores an image and returns its public URL
// POST /admin/media/images
func (h *MediaHandler) UploadImage(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.InternalServerError(c, "Media storage is not configured")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file uploaded")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExtensions[ext] {
		return response.BadRequest(c, "Unsupported image format")
	}

	if file.Size > maxImageSizeMB*1024*1024 {
		return response.BadRequest(c, "Image exceeds the maximum size of 10MB")
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	folder := c.FormValue("folder", "images")
	key := storage.GenerateKey(folder, file.Filename)

	url, err := h.spaces.UploadFile(c.Context(), key, src, storage.GetContentType(file.Filename))
	if err != nil {
		return response.InternalServerError(c, "Failed to upload image")
	}

	return response.Created(c, "Image uploaded successfully", fiber.Map{
		"key": key,
		"url": url,
	})
}

// UploadDocument validates and stores a PDF for the downloads section
// POST /admin/media/documents
func (h *MediaHandler) UploadDocument(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.InternalServerError(c, "Media storage is not configured")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "No file uploaded")
	}

	result, err := pdfvalidation.ValidatePDFFile(file, pdfvalidation.DownloadLimits)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	if !result.Valid {
		return response.BadRequest(c, result.Error)
	}

	src, err := file.Open()
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return response.InternalServerError(c, "Failed to read uploaded file")
	}

	key := storage.GenerateKey("documents", file.Filename)

	url, err := h.spaces.UploadBytes(c.Context(), key, content, "application/pdf")
	if err != nil {
		return response.InternalServerError(c, "Failed to upload document")
	}

	return response.Created(c, "Document uploaded successfully", fiber.Map{
		"key":        key,
		"url":        url,
		"page_count": result.PageCount,
		"file_size":  result.FileSize,
	})
}

// ListMedia lists stored objects under a prefix
// GET /admin/media
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.InternalServerError(c, "Media storage is not configured")
	}

	prefix := c.Query("prefix", "images")

	files, err := h.spaces.ListFiles(c.Context(), prefix)
	if err != nil {
		return response.InternalServerError(c, "Failed to list media")
	}

	return response.Success(c, files)
}

// DeleteMedia removes a stored object
// DELETE /admin/media
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	if h.spaces == nil {
		return response.InternalServerError(c, "Media storage is not configured")
	}

	key := c.Query("key")
	if key == "" {
		return response.BadRequest(c, "Object key is required")
	}

	if err := h.spaces.DeleteFiles(c.Context(), key); err != nil {
		return response.InternalServerError(c, "Failed to delete media")
	}

	return response.SuccessWithMessage(c, "Media deleted successfully", fiber.Map{"key": key})
}
