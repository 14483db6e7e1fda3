package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quietpines/sondera/internal/services"
)

// Submit sends the completed application to the registration endpoint and
// relays the classified outcome. On outcomes that end the session the
// auth cookie is cleared here, after the wizard has already cleared its
// own state.
func (handler *Handler) Submit(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	outcome, fieldErrors, err := handler.wizard.Submit(c.Context(), identity)
	if err != nil {
		return handler.wizardError(c, err)
	}
	if !fieldErrors.IsEmpty() {
		return apiFieldErrors(c, fieldErrors)
	}

	if outcome.SignOut {
		handler.clearAuthCookie(c)
	}

	status := fiber.StatusOK
	if outcome.Outcome == services.OutcomeFailed {
		status = fiber.StatusBadGateway
	}
	payload := fiber.Map{
		"outcome":   outcome.Outcome,
		"message":   outcome.Message,
		"signedOut": outcome.SignOut,
	}
	if outcome.RegistrationID != "" {
		payload["registrationId"] = outcome.RegistrationID
	}
	if outcome.Redirect != "" {
		payload["redirect"] = outcome.Redirect
	}
	return c.Status(status).JSON(payload)
}
