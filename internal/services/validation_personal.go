package services

import (
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

const dateLayout = "2006-01-02"

func validatePersonalStep(data models.OnboardingData, _ ValidationRules, now time.Time) FieldErrors {
	errors := FieldErrors{}
	personal := data.Personal

	if strings.TrimSpace(personal.Phone) == "" {
		errors["phone"] = "Phone number is required"
	}

	birthDate := strings.TrimSpace(personal.DateOfBirth)
	if birthDate == "" {
		errors["dateOfBirth"] = "Date of birth is required"
	} else if parsed, err := time.ParseInLocation(dateLayout, birthDate, now.Location()); err != nil {
		errors["dateOfBirth"] = "Date of birth must use YYYY-MM-DD"
	} else if !parsed.Before(now) {
		errors["dateOfBirth"] = "Date of birth must be in the past"
	}

	return errors
}
