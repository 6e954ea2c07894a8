package handlers

import (
	"errors"

	"ilovehiphop.ja/configs/configslog"
	"ilovehiphop.ja/models"
	"ilovehiphop.ja/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const maxErrorDetailLength = 200

type fieldErrorDetail struct {
	Field string `json:"field"`
	Msg   string `json:"msg"`
}

// respondError maps service errors to status codes: validation failures are 422,
// an unknown RSVP package is 400, everything else (store failures included) is 500.
func respondError(c *fiber.Ctx, err error) error {
	if fieldErrs := models.ValidationErrors(err); len(fieldErrs) > 0 {
		details := make([]fieldErrorDetail, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			details = append(details, fieldErrorDetail{Field: fe.Field, Msg: fe.Message})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"detail": details})
	}

	if errors.Is(err, services.ErrInvalidPackage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"detail": err.Error()})
	}

	configslog.Log.Error("Request failed",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"detail": services.Truncate(err.Error(), maxErrorDetailLength),
	})
}
