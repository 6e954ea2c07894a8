package handlers

import (
	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ConversionHandler serves the two public write endpoints.
type ConversionHandler struct {
	membershipService services.IMembershipService
	rsvpService       services.IRSVPService
}

func NewConversionHandler(membershipService services.IMembershipService, rsvpService services.IRSVPService) *ConversionHandler {
	return &ConversionHandler{
		membershipService: membershipService,
		rsvpService:       rsvpService,
	}
}

// MembershipSignup (POST /api/membership/signup)
func (h *ConversionHandler) MembershipSignup(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := h.membershipService.Signup(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "id": id})
}

// CreateRSVP (POST /api/rsvp)
func (h *ConversionHandler) CreateRSVP(c *fiber.Ctx) error {
	payload, err := parsePayload(c)
	if err != nil {
		return respondError(c, err)
	}
	id, err := h.rsvpService.CreateRSVP(c.UserContext(), payload)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true, "id": id})
}

// parsePayload decodes a JSON object body.
func parsePayload(c *fiber.Ctx) (models.Document, error) {
	var payload models.Document
	if err := c.BodyParser(&payload); err != nil {
		configslog.Log.Warn("Request body could not be parsed", zap.String("path", c.Path()), zap.Error(err))
		return nil, models.NewValidationError("body", "must be a JSON object")
	}
	if payload == nil {
		payload = models.Document{}
	}
	return payload, nil
}
