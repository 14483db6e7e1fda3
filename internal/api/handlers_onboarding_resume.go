package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quietpines/sondera/internal/services"
)

// Resume answers the resume prompt. "continue" jumps to the saved step
// with the restored data; "start_over" wipes the stored application and
// signs the user out for a clean restart.
func (handler *Handler) Resume(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var input resumeInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	switch input.Action {
	case "continue":
		state, err := handler.wizard.Continue(c.Context(), identity)
		if err != nil {
			return handler.wizardError(c, err)
		}
		return c.JSON(wizardStateJSON(state))
	case "start_over":
		state, err := handler.wizard.StartOver(c.Context(), identity)
		if err != nil {
			return handler.wizardError(c, err)
		}
		handler.clearAuthCookie(c)
		payload := wizardStateJSON(state)
		payload["signedOut"] = true
		return c.JSON(payload)
	default:
		return apiFieldErrors(c, services.FieldErrors{
			"action": "Action must be continue or start_over",
		})
	}
}
