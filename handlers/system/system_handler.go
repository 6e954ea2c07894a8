package handlers

import (
	"ilovehiphop.ja/configs/configsapp"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/services"

	"github.com/gofiber/fiber/v2"
)

// SystemHandler serves liveness, diagnostics and schema discovery.
type SystemHandler struct {
	diagnosticService services.IDiagnosticService
}

func NewSystemHandler(diagnosticService services.IDiagnosticService) *SystemHandler {
	return &SystemHandler{diagnosticService: diagnosticService}
}

// Root (GET /)
func (h *SystemHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"name": configsapp.AppName, "status": "ok"})
}

// Diagnostics (GET /test) always answers 200; store problems are reported as text.
func (h *SystemHandler) Diagnostics(c *fiber.Ctx) error {
	return c.JSON(h.diagnosticService.Report(c.UserContext()))
}

// Schema (GET /schema) lists the collections for admin tooling.
func (h *SystemHandler) Schema(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"collections": models.Collections()})
}
