package handlers

import (
	"github.com/gofiber/fiber/v2"

	"resumeai/reviewer/internal/models"
)

type RolesHandler struct{}

func NewRolesHandler() *RolesHandler {
	return &RolesHandler{}
}

// HandleGetRoles handles GET /roles: the fixed role catalog for the
// client's role selector.
func (h *RolesHandler) HandleGetRoles(c *fiber.Ctx) error {
	return c.JSON(models.RoleCatalog)
}
