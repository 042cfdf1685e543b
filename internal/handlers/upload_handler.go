package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"resumeai/reviewer/internal/models"
	"resumeai/reviewer/internal/repositories"
	"resumeai/reviewer/internal/services"
)

type UploadHandler struct {
	docRepo        repositories.DocumentRepository
	storageService services.StorageService
	resumeParser   services.ResumeParserService
	indexer        services.Indexer
	maxFileSize    int64
}

func NewUploadHandler(
	docRepo repositories.DocumentRepository,
	storageService services.StorageService,
	resumeParser services.ResumeParserService,
	indexer services.Indexer,
	maxFileSize int64,
) *UploadHandler {
	return &UploadHandler{
		docRepo:        docRepo,
		storageService: storageService,
		resumeParser:   resumeParser,
		indexer:        indexer,
		maxFileSize:    maxFileSize,
	}
}

// HandleUpload handles POST /upload: accepts exactly one PDF resume,
// parses it, and returns the structured record.
func (h *UploadHandler) HandleUpload(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "No resume file uploaded. Please upload a PDF file under the 'resume' field.",
		})
	}

	if file.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	filename, filePath, err := h.storageService.SaveFile(file)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume file: %v", err),
		})
	}

	record, err := h.resumeParser.Parse(filePath, file.Filename)
	if err != nil {
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to parse resume: %v", err),
		})
	}

	doc := models.Document{
		ID:               uuid.New(),
		Filename:         filename,
		OriginalFileName: file.Filename,
		FilePath:         filePath,
		RawText:          record.RawText,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if err := h.docRepo.Create(&doc); err != nil {
		// Cleanup uploaded file if database insert fails
		h.storageService.DeleteFile(filename)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": fmt.Sprintf("failed to save resume document record: %v", err),
		})
	}

	record.Metadata.DocumentID = doc.ID.String()

	// Vector indexing happens in the background
	h.indexer.EnqueueDocument(doc.ID)

	return c.Status(fiber.StatusOK).JSON(models.UploadResponse{
		Message: "Resume parsed successfully",
		Data:    record,
	})
}
