package services

import (
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateSpecialtiesStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	if !data.Specialties.AnySelected() {
		errors["clinicalSpecialties"] = "Select at least one clinical specialty"
	}
	return errors
}

func validateApproachStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	if !data.Approach.Modalities.AnySelected() {
		errors["treatmentModalities"] = "Select at least one treatment modality"
	}
	if !data.Approach.Formats.AnySelected() {
		errors["sessionFormats"] = "Select at least one session format"
	}
	return errors
}
