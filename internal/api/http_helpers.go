package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quietpines/sondera/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// apiFieldErrors reports a validation failure: 422 with the per-field map.
func apiFieldErrors(c *fiber.Ctx, fieldErrors services.FieldErrors) error {
	return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
		"error":       "validation failed",
		"fieldErrors": fieldErrors,
	})
}

func wizardStateJSON(state services.WizardState) fiber.Map {
	payload := fiber.Map{
		"step":       state.Step,
		"totalSteps": state.TotalSteps,
		"data":       state.Data,
		"sessionId":  state.SessionID,
	}
	if state.ResumeRequired {
		payload["resumeRequired"] = true
		payload["resumeStep"] = state.ResumeStep
	}
	return payload
}
