// Package cli implements operator commands that work against the local
// database directly, for recovering accounts without the HTTP API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quietpines/sondera/internal/db"
	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/security"
	"github.com/quietpines/sondera/internal/services"
)

// RunResetPasswordCommand replaces the user's password with a generated
// temporary one and prints it to stdout.
func RunResetPasswordCommand(dbPath string, email string) error {
	repositories, user, err := loadUser(dbPath, email)
	if err != nil {
		return err
	}

	temporaryPassword, err := generateTemporaryPassword(12)
	if err != nil {
		return fmt.Errorf("generate temporary password: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(temporaryPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}

	if err := repositories.Users.UpdatePasswordHash(user.ID, string(passwordHash)); err != nil {
		return fmt.Errorf("update user password: %w", err)
	}

	fmt.Printf("Password reset for %s\n", user.Email)
	fmt.Printf("Temporary password: %s\n", temporaryPassword)
	return nil
}

// RunClearProgressCommand drops the user's saved onboarding snapshot so
// the wizard starts from the first step on their next visit.
func RunClearProgressCommand(dbPath string, email string) error {
	repositories, user, err := loadUser(dbPath, email)
	if err != nil {
		return err
	}

	if err := repositories.Progress.Clear(context.Background(), user.ID); err != nil {
		return fmt.Errorf("clear onboarding progress: %w", err)
	}

	fmt.Printf("Onboarding progress cleared for %s\n", user.Email)
	return nil
}

func loadUser(dbPath string, email string) (*db.Repositories, models.User, error) {
	normalizedEmail := services.NormalizeAuthEmail(email)
	if normalizedEmail == "" {
		return nil, models.User{}, errors.New("email is required")
	}
	if _, err := mail.ParseAddress(normalizedEmail); err != nil {
		return nil, models.User{}, fmt.Errorf("invalid email address: %w", err)
	}

	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, models.User{}, fmt.Errorf("database init failed: %w", err)
	}
	repositories := db.NewRepositories(database)

	user, err := repositories.Users.FindByNormalizedEmail(normalizedEmail)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.User{}, fmt.Errorf("user %s not found", normalizedEmail)
		}
		return nil, models.User{}, fmt.Errorf("load user: %w", err)
	}
	return repositories, user, nil
}

func generateTemporaryPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}

	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"
	return security.RandomString(length, alphabet)
}
