package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/services"
)

// Register creates the account, signs the user in and records the first
// wizard step from the same input, so a fresh signup lands on step 2.
func (handler *Handler) Register(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" {
		return apiFieldErrors(c, services.FieldErrors{
			"firstName": "First name is required",
			"lastName":  "Last name is required",
		})
	}

	displayName := strings.TrimSpace(input.FirstName) + " " + strings.TrimSpace(input.LastName)
	user, err := handler.authService.Register(input.Email, input.Password, displayName)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return apiError(c, fiber.StatusConflict, "email already registered")
		case errors.Is(err, services.ErrWeakPassword):
			return apiFieldErrors(c, services.FieldErrors{
				"password": "Password must be at least 8 characters with upper, lower and digit",
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return apiError(c, fiber.StatusBadRequest, "email and password are required")
		default:
			handler.logger.Error("register failed", zap.Error(err))
			return apiError(c, fiber.StatusInternalServerError, "registration failed")
		}
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		handler.logger.Error("mint auth token failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	handler.setAuthCookie(c, token)

	identity := services.Identity{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Token:       token,
	}
	firstName := strings.TrimSpace(input.FirstName)
	lastName := strings.TrimSpace(input.LastName)
	email := user.Email
	state, fieldErrors, err := handler.wizard.SubmitStep(c.Context(), identity, models.StepAccount, services.AccountPatch{
		FirstName: &firstName,
		LastName:  &lastName,
		Email:     &email,
	})
	if err != nil {
		handler.logger.Error("record account step failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "registration failed")
	}
	if !fieldErrors.IsEmpty() {
		return apiFieldErrors(c, fieldErrors)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"user":       userJSON(user),
		"onboarding": wizardStateJSON(state),
	})
}

func (handler *Handler) Login(c *fiber.Ctx) error {
	var input credentialsInput
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid request body")
	}

	user, err := handler.authService.Authenticate(input.Email, input.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return apiError(c, fiber.StatusUnauthorized, "invalid email or password")
		}
		handler.logger.Error("login failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}

	token, err := handler.buildToken(&user)
	if err != nil {
		handler.logger.Error("mint auth token failed", zap.Error(err))
		return apiError(c, fiber.StatusInternalServerError, "login failed")
	}
	handler.setAuthCookie(c, token)

	return c.JSON(fiber.Map{"user": userJSON(user)})
}

func (handler *Handler) Logout(c *fiber.Ctx) error {
	handler.clearAuthCookie(c)
	return c.JSON(fiber.Map{"ok": true})
}

func userJSON(user models.User) fiber.Map {
	return fiber.Map{
		"id":                  user.ID,
		"email":               user.Email,
		"displayName":         user.DisplayName,
		"onboardingCompleted": user.OnboardingCompleted,
	}
}
