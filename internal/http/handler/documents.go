package handler

import (
	"bytes"
	"io"

	"github.com/gofiber/fiber/v2"

	"studyaid/internal/service"
)

// ListDocuments godoc
// @Summary List documents
// @Tags documents
// @Produce json
// @Success 200 {array} model.Document
// @Router /api/documents [get]
func ListDocuments(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		docs, err := svc.ListDocuments(c.UserContext())
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.JSON(docs)
	}
}

// UploadDocument godoc
// @Summary Upload a study document
// @Description Multipart upload (field "file"). The document is returned unprocessed; processing finishes in the background.
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "PDF, PNG, JPEG or TXT"
// @Success 201 {object} model.Document
// @Failure 400 {object} errorPayload
// @Failure 413 {object} errorPayload
// @Failure 415 {object} errorPayload
// @Router /api/upload [post]
func UploadDocument(svc service.StudyService, policy UploadPolicy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("file")
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
		}
		if perr := policy.checkSize(fh.Size); perr != nil {
			return writeError(c, perr.status, perr.code, perr.message)
		}

		f, err := fh.Open()
		if err != nil {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot open uploaded file")
		}
		defer f.Close()

		head := make([]byte, sniffLen)
		n, err := io.ReadFull(f, head)
		if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
			return writeError(c, fiber.StatusBadRequest, "FILE_OPEN_ERROR", "cannot read uploaded file")
		}
		head = head[:n]

		ct, perr := policy.detect(fh.Filename, head)
		if perr != nil {
			return writeError(c, perr.status, perr.code, perr.message)
		}

		doc, err := svc.UploadDocument(c.UserContext(), service.UploadInput{
			Reader:      io.MultiReader(bytes.NewReader(head), f),
			Filename:    fh.Filename,
			ContentType: ct,
			Size:        fh.Size,
		})
		if err != nil {
			return respondServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(doc)
	}
}

// DeleteDocument godoc
// @Summary Delete a document with its guides and tests
// @Tags documents
// @Param id path int true "Document ID"
// @Success 204
// @Failure 400 {object} errorPayload
// @Router /api/documents/{id} [delete]
func DeleteDocument(svc service.StudyService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		if err := svc.DeleteDocument(c.UserContext(), id); err != nil {
			return respondServiceError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}
