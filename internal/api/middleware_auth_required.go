package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quietpines/sondera/internal/services"
)

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, token, err := handler.authenticateRequest(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}

	c.Locals(contextUserKey, services.Identity{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Federated:   user.Federated,
		Token:       token,
	})
	return c.Next()
}
