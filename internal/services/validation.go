package services

import (
	"time"

	"github.com/quietpines/sondera/internal/models"
)

// FieldErrors maps a field name to a human-readable message. A step is
// advance-eligible iff its map is empty. Validation failures are values,
// never Go errors.
type FieldErrors map[string]string

func (errors FieldErrors) IsEmpty() bool {
	return len(errors) == 0
}

// ValidationRules carries the configurable rules. EnforceSlotOrder adds
// end-after-start and same-day overlap checks to the availability step;
// the source behavior leaves both unchecked, so it defaults to off.
type ValidationRules struct {
	EnforceSlotOrder bool
}

type stepValidator func(data models.OnboardingData, rules ValidationRules, now time.Time) FieldErrors

// stepValidators is the explicit step→validator table; steps are addressed
// by enumerant, not by string key into the data record.
var stepValidators = map[int]stepValidator{
	models.StepAccount:      validateAccountStep,
	models.StepPersonal:     validatePersonalStep,
	models.StepAddress:      validateAddressStep,
	models.StepProfile:      validateProfileStep,
	models.StepLicense:      validateLicenseStep,
	models.StepCapacity:     validateCapacityStep,
	models.StepSpecialties:  validateSpecialtiesStep,
	models.StepApproach:     validateApproachStep,
	models.StepAvailability: validateAvailabilityStep,
	models.StepCompliance:   validateComplianceStep,
}

// ValidateStep runs the named step's rule set against the full data record
// and reports per-field messages. Pure: the input is never mutated.
func ValidateStep(step int, data models.OnboardingData, rules ValidationRules, now time.Time) FieldErrors {
	validator, ok := stepValidators[step]
	if !ok {
		return FieldErrors{}
	}
	return validator(data, rules, now)
}
