package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/services"
)

const (
	authCookieName = "sondera_auth"
	contextUserKey = "current_user"
)

type authClaims struct {
	UserID uint `json:"uid"`
	jwt.RegisteredClaims
}

// authenticateRequest resolves the auth cookie, or a bearer header as the
// API fallback, into a user plus the raw token the wizard forwards to
// remote collaborators.
func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.User, string, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if strings.HasPrefix(header, "Bearer ") {
			rawToken = strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		}
	}
	if rawToken == "" {
		return nil, "", errors.New("missing auth token")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, "", errors.New("invalid token")
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, "", errors.New("token expired")
	}

	user, err := handler.authService.FindByID(claims.UserID)
	if err != nil {
		return nil, "", err
	}
	return &user, rawToken, nil
}

func currentIdentity(c *fiber.Ctx) (services.Identity, bool) {
	identity, ok := c.Locals(contextUserKey).(services.Identity)
	return identity, ok
}
