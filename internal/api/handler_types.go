package api

import (
	"time"

	"go.uber.org/zap"

	"github.com/quietpines/sondera/internal/db"
	"github.com/quietpines/sondera/internal/services"
)

type Handler struct {
	repositories *db.Repositories
	authService  *services.AuthService
	wizard       *services.WizardService
	secretKey    []byte
	cookieSecure bool
	logger       *zap.Logger
}

const authTokenTTL = 7 * 24 * time.Hour

type credentialsInput struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type resumeInput struct {
	Action string `json:"action"`
}

func NewHandler(
	repositories *db.Repositories,
	wizard *services.WizardService,
	secret string,
	cookieSecure bool,
	logger *zap.Logger,
) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		repositories: repositories,
		authService:  services.NewAuthService(repositories.Users),
		wizard:       wizard,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		logger:       logger,
	}
}
