package services

import (
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateAddressStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	address := data.Address

	if strings.TrimSpace(address.PracticeName) == "" {
		errors["practiceName"] = "Practice name is required"
	}
	if strings.TrimSpace(address.Street) == "" {
		errors["street"] = "Street address is required"
	}
	if strings.TrimSpace(address.City) == "" {
		errors["city"] = "City is required"
	}
	if strings.TrimSpace(address.State) == "" {
		errors["state"] = "State is required"
	}
	if strings.TrimSpace(address.PostalCode) == "" {
		errors["postalCode"] = "Postal code is required"
	}

	return errors
}
