package services

import (
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateCapacityStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	capacity := data.Capacity

	if capacity.YearsOfExperience < 0 {
		errors["yearsOfExperience"] = "Years of experience cannot be negative"
	}
	if capacity.MaxCaseloadCapacity <= 0 {
		errors["maxCaseloadCapacity"] = "Max caseload capacity is required"
	}
	if capacity.NewClientsCapacity < 0 {
		errors["newClientsCapacity"] = "New clients capacity cannot be negative"
	} else if capacity.MaxCaseloadCapacity > 0 && capacity.NewClientsCapacity > capacity.MaxCaseloadCapacity {
		errors["newClientsCapacity"] = "New clients capacity cannot exceed max caseload capacity"
	}

	return errors
}
