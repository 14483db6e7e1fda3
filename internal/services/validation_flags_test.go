package services

import (
	"testing"

	"github.com/quietpines/sondera/internal/models"
)

func TestValidateSpecialtiesStepNeedsAtLeastOne(t *testing.T) {
	data := completeOnboardingData()
	data.Specialties = models.ClinicalSpecialties{}

	errs := ValidateStep(models.StepSpecialties, data, ValidationRules{}, testNow)
	if errs["clinicalSpecialties"] == "" {
		t.Fatal("expected an error with no specialty selected")
	}

	data.Specialties.Grief = true
	if errs := ValidateStep(models.StepSpecialties, data, ValidationRules{}, testNow); !errs.IsEmpty() {
		t.Fatalf("unexpected field errors: %v", errs)
	}
}

func TestValidateApproachStepNeedsModalityAndFormat(t *testing.T) {
	data := completeOnboardingData()
	data.Approach = models.TreatmentApproach{}

	errs := ValidateStep(models.StepApproach, data, ValidationRules{}, testNow)
	if errs["treatmentModalities"] == "" || errs["sessionFormats"] == "" {
		t.Fatalf("expected errors for both groups, got %v", errs)
	}

	data.Approach.Modalities.EMDR = true
	errs = ValidateStep(models.StepApproach, data, ValidationRules{}, testNow)
	if errs["treatmentModalities"] != "" || errs["sessionFormats"] == "" {
		t.Fatalf("expected only a sessionFormats error, got %v", errs)
	}
}

func TestValidateComplianceStepRequiresAcknowledgements(t *testing.T) {
	data := completeOnboardingData()
	data.Compliance.HIPAAAcknowledged = false
	data.Compliance.TermsAccepted = false

	errs := ValidateStep(models.StepCompliance, data, ValidationRules{}, testNow)
	if errs["hipaaAcknowledged"] == "" || errs["termsAccepted"] == "" {
		t.Fatalf("expected acknowledgement errors, got %v", errs)
	}
}

func TestValidateComplianceStepNeedsPanelOrPrivatePay(t *testing.T) {
	data := completeOnboardingData()
	data.Compliance.InsurancePanels = models.InsurancePanels{}

	errs := ValidateStep(models.StepCompliance, data, ValidationRules{}, testNow)
	if errs["insurancePanels"] == "" {
		t.Fatal("expected an insurancePanels error with nothing selected")
	}
}
