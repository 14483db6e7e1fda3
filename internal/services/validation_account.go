package services

import (
	"net/mail"
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateAccountStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	account := data.Account

	if strings.TrimSpace(account.FirstName) == "" {
		errors["firstName"] = "First name is required"
	}
	if strings.TrimSpace(account.LastName) == "" {
		errors["lastName"] = "Last name is required"
	}

	email := strings.TrimSpace(account.Email)
	if email == "" {
		errors["email"] = "Email is required"
	} else if _, err := mail.ParseAddress(email); err != nil {
		errors["email"] = "Email is not a valid address"
	}

	return errors
}
