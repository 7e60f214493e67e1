package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/dto"
	"github.com/HarshvardhanPondkule/InventoTrack/internal/application/media"
)

// UploadHandler forwards product photos to the image hosting provider.
type UploadHandler struct {
	uploader media.Uploader
}

// NewUploadHandler builds the handler.
func NewUploadHandler(uploader media.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// Upload godoc
// @Summary      Upload a product image
// @Tags         uploads
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image file"
// @Success      200   {object}  dto.UploadResponse
// @Failure      400   {object}  dto.UploadResponse  "no file provided"
// @Failure      500   {object}  dto.UploadResponse  "provider error"
// @Router       /api/uploads [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.UploadResponse{Success: false, Error: "No file provided"})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.UploadResponse{Success: false, Error: "Unreadable file"})
	}
	defer file.Close()

	data, err := h.uploader.Upload(c.Context(), file, fileHeader.Filename)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.UploadResponse{Success: false, Error: "Image upload failed"})
	}
	return c.JSON(dto.UploadResponse{Success: true, Data: data})
}

// Delete godoc
// @Summary      Delete an uploaded image by its public ID
// @Tags         uploads
// @Security     Bearer
// @Produce      json
// @Param        publicId  path  string  true  "Asset public ID"
// @Success      200  {object}  dto.UploadResponse
// @Failure      500  {object}  dto.UploadResponse
// @Router       /api/uploads/{publicId} [delete]
func (h *UploadHandler) Delete(c *fiber.Ctx) error {
	publicID := c.Params("publicId")
	if publicID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.UploadResponse{Success: false, Error: "No public ID provided"})
	}
	if err := h.uploader.Delete(c.Context(), publicID); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.UploadResponse{Success: false, Error: "Image delete failed"})
	}
	return c.JSON(dto.UploadResponse{Success: true})
}
