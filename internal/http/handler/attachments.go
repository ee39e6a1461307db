package handler

import (
	"github.com/gofiber/fiber/v2"

	"doctrack/internal/service"
)

// UploadAttachment godoc
// @Summary Attach a file to a document
// @Tags attachments
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Document ID"
// @Param file formData file true "File"
// @Success 201 {object} model.Attachment
// @Failure 400 {object} errorPayload
// @Failure 503 {object} errorPayload
// @Router /api/v1/documents/{id}/attachments [post]
func UploadAttachment(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return errFileRequired
		}

		f, err := fh.Open()
		if err != nil {
			return errFileRequired
		}
		defer f.Close()

		ct := fh.Header.Get("Content-Type")
		if ct == "" {
			ct = "application/octet-stream"
		}

		att, err := svc.Upload(c.UserContext(), c.Params("id"), f, fh.Filename, ct, fh.Size)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(att)
	}
}

// AttachmentLink godoc
// @Summary Get a time-limited download link
// @Tags attachments
// @Produce json
// @Param id path string true "Document ID"
// @Param attachmentID path string true "Attachment ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errorPayload
// @Router /api/v1/documents/{id}/attachments/{attachmentID}/link [get]
func AttachmentLink(svc service.AttachmentService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		u, err := svc.Link(c.UserContext(), c.Params("id"), c.Params("attachmentID"))
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"url": u})
	}
}
