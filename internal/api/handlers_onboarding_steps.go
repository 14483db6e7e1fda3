package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/quietpines/sondera/internal/services"
)

// SubmitStep merges the posted patch into the addressed step and, when it
// validates, advances the wizard. Validation failures come back as 422
// with the per-field map; the wizard state is untouched.
func (handler *Handler) SubmitStep(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	step, err := strconv.Atoi(c.Params("step"))
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid step number")
	}

	patch, err := services.DecodeStepPatch(step, c.Body())
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid step payload")
	}

	state, fieldErrors, err := handler.wizard.SubmitStep(c.Context(), identity, step, patch)
	if err != nil {
		return handler.wizardError(c, err)
	}
	if !fieldErrors.IsEmpty() {
		return apiFieldErrors(c, fieldErrors)
	}
	return c.JSON(wizardStateJSON(state))
}

// PreviousStep moves back one step without touching entered data.
func (handler *Handler) PreviousStep(c *fiber.Ctx) error {
	identity, ok := currentIdentity(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	state, err := handler.wizard.Previous(c.Context(), identity)
	if err != nil {
		return handler.wizardError(c, err)
	}
	return c.JSON(wizardStateJSON(state))
}

func (handler *Handler) wizardError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrResumePending):
		return apiError(c, fiber.StatusConflict, "resume decision pending")
	case errors.Is(err, services.ErrNoResumePending):
		return apiError(c, fiber.StatusConflict, "no resume decision pending")
	case errors.Is(err, services.ErrStepMismatch):
		return apiError(c, fiber.StatusConflict, "step does not match the active step")
	case errors.Is(err, services.ErrStepOutOfRange):
		return apiError(c, fiber.StatusBadRequest, "step out of range")
	case errors.Is(err, services.ErrNotOnFinalStep):
		return apiError(c, fiber.StatusConflict, "submission requires the final step")
	default:
		handler.logger.Error("wizard operation failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "onboarding operation failed")
	}
}
