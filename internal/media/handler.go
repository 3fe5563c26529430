package media

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"

	"github.com/Kyz7/gallery/internal/response"
	"github.com/Kyz7/gallery/internal/utils"
	"github.com/gofiber/fiber/v2"
)

const (
	maxImageSize = int64(10 * 1024 * 1024)
	maxVideoSize = int64(100 * 1024 * 1024)
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListEntriesHandler(c *fiber.Ctx) error {
	entries := h.service.session.Entries()
	return response.Success(c, fiber.Map{
		"entries": entries,
		"total":   len(entries),
	}, "Entries retrieved successfully")
}

func (h *Handler) CreateEntryHandler(c *fiber.Ctx) error {
	var form EntryForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	entry, errs := h.service.Create(c.UserContext(), form)
	if len(errs) > 0 {
		return response.ValidationError(c, errs)
	}

	return response.Created(c, entry, "Entry created successfully")
}

func (h *Handler) UpdateEntryHandler(c *fiber.Ctx) error {
	var form EntryForm
	if err := c.BodyParser(&form); err != nil {
		return response.BadRequest(c, "Invalid request body", err.Error())
	}

	entry, found, errs := h.service.Update(c.UserContext(), c.Params("id"), form)
	if !found {
		return response.NotFound(c, "Entry")
	}
	if len(errs) > 0 {
		return response.ValidationError(c, errs)
	}

	return response.Success(c, entry, "Entry updated successfully")
}

func (h *Handler) DeleteEntryHandler(c *fiber.Ctx) error {
	if _, ok := h.service.Delete(c.UserContext(), c.Params("id")); !ok {
		return response.NotFound(c, "Entry")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadMediaHandler stores an image or video file and returns its URL for
// use as imageUrl or mediaUrl in an entry form.
func (h *Handler) UploadMediaHandler(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "File is required", nil)
	}

	contentType := file.Header.Get("Content-Type")
	kind := utils.MediaKind(contentType)
	if kind == "" {
		return response.BadRequest(c, "Only image and video files are accepted", fiber.Map{
			"content_type": contentType,
		})
	}

	maxSize := maxImageSize
	if kind == "video" {
		maxSize = maxVideoSize
	}
	if file.Size > maxSize {
		return response.BadRequest(c, "File too large", fiber.Map{
			"max_size_mb":  maxSize / (1024 * 1024),
			"file_size_mb": file.Size / (1024 * 1024),
		})
	}

	url, err := utils.UploadFile(file)
	if err != nil {
		return response.InternalError(c, "Failed to upload file: "+err.Error())
	}

	result := fiber.Map{
		"url":          url,
		"kind":         kind,
		"file_name":    file.Filename,
		"size":         file.Size,
		"storage_mode": utils.GetStorageMode(),
	}
	if kind == "image" {
		if width, height, err := getImageDimensions(file); err == nil {
			result["width"] = width
			result["height"] = height
		}
	}

	return response.Created(c, result, "Media uploaded successfully")
}

func getImageDimensions(file *multipart.FileHeader) (int, int, error) {
	src, err := file.Open()
	if err != nil {
		return 0, 0, err
	}
	defer src.Close()

	img, _, err := image.DecodeConfig(src)
	if err != nil {
		return 0, 0, err
	}

	return img.Width, img.Height, nil
}
