package services

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/quietpines/sondera/internal/models"
)

const (
	shortBioMaxLength    = 80
	extendedBioMinLength = 100
	extendedBioMaxLength = 700
)

func validateProfileStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	profile := data.Profile

	shortBio := strings.TrimSpace(profile.ShortBio)
	if shortBio == "" {
		errors["shortBio"] = "Short bio is required"
	} else if utf8.RuneCountInString(shortBio) > shortBioMaxLength {
		errors["shortBio"] = "Short bio must be 80 characters or fewer"
	}

	extendedBio := strings.TrimSpace(profile.ExtendedBio)
	extendedLength := utf8.RuneCountInString(extendedBio)
	if extendedBio == "" {
		errors["extendedBio"] = "Extended bio is required"
	} else if extendedLength < extendedBioMinLength || extendedLength > extendedBioMaxLength {
		errors["extendedBio"] = "Extended bio must be between 100 and 700 characters"
	}

	return errors
}
