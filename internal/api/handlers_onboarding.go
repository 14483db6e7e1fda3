package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetOnboarding returns the current wizard state, restoring or hydrating
// the session on first contact. A resumable application is reported via
// resumeRequired; the client answers through the resume endpoint.
func (handler *Handler) GetOnboarding(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	state, err := handler.wizard.State(c.Context(), identity)
	if err != nil {
		handler.logger.Error("load onboarding state failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "failed to load onboarding state")
	}
	return c.JSON(wizardStateJSON(state))
}
