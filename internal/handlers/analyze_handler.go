package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"resumeai/reviewer/internal/models"
	"resumeai/reviewer/internal/services"
)

type AnalyzeHandler struct {
	analyzer services.AnalyzerService
	validate *validator.Validate
}

func NewAnalyzeHandler(analyzer services.AnalyzerService) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer: analyzer,
		validate: validator.New(),
	}
}

// HandleAnalyze handles POST /analyze.
func (h *AnalyzeHandler) HandleAnalyze(c *fiber.Ctx) error {
	var req models.AnalyzeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Missing resume_data or target_role",
		})
	}

	result, err := h.analyzer.Analyze(c.Context(), req.ResumeData, req.TargetRole)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to analyze resume",
		})
	}

	return c.JSON(result)
}
