package services

import (
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateLicenseStep(data models.OnboardingData, _ ValidationRules, now time.Time) FieldErrors {
	errors := FieldErrors{}
	license := data.License

	if strings.TrimSpace(license.LicenseType) == "" {
		errors["licenseType"] = "License type is required"
	}
	if strings.TrimSpace(license.LicenseNumber) == "" {
		errors["licenseNumber"] = "License number is required"
	}
	if strings.TrimSpace(license.LicenseState) == "" {
		errors["licenseState"] = "License state is required"
	}

	expiryRaw := strings.TrimSpace(license.ExpiryDate)
	if expiryRaw == "" {
		errors["expiryDate"] = "License expiry date is required"
	} else if expiry, err := time.ParseInLocation(dateLayout, expiryRaw, now.Location()); err != nil {
		errors["expiryDate"] = "License expiry date must use YYYY-MM-DD"
	} else if expiry.Before(dateOnly(now)) {
		errors["expiryDate"] = "License expiry date must not be in the past"
	}

	if license.LicenseDocument.IsAbsent() {
		errors["licenseDocument"] = "License document is required"
	}

	return errors
}
