package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"resumeai/reviewer/internal/models"
	"resumeai/reviewer/internal/services"
)

type ChatHandler struct {
	mentor   services.MentorService
	validate *validator.Validate
}

func NewChatHandler(mentor services.MentorService) *ChatHandler {
	return &ChatHandler{
		mentor:   mentor,
		validate: validator.New(),
	}
}

// HandleChat handles POST /chat: one mentor turn, optionally grounded on a
// context string the client derived from its latest analysis.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Message required",
		})
	}

	reply, err := h.mentor.Reply(c.Context(), req.Message, req.Context)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Failed to generate reply",
		})
	}

	return c.JSON(models.ChatResponse{Reply: reply})
}
