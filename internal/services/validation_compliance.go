package services

import (
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

func validateComplianceStep(data models.OnboardingData, _ ValidationRules, _ time.Time) FieldErrors {
	errors := FieldErrors{}
	compliance := data.Compliance

	if !compliance.InsurancePanels.AnySelected() {
		errors["insurancePanels"] = "Select at least one insurance panel or private pay"
	}
	if strings.TrimSpace(compliance.MalpracticeCarrier) == "" {
		errors["malpracticeCarrier"] = "Malpractice carrier is required"
	}
	if strings.TrimSpace(compliance.MalpracticePolicyNumber) == "" {
		errors["malpracticePolicyNumber"] = "Malpractice policy number is required"
	}
	if !compliance.HIPAAAcknowledged {
		errors["hipaaAcknowledged"] = "HIPAA acknowledgement is required"
	}
	if !compliance.TermsAccepted {
		errors["termsAccepted"] = "Terms of service must be accepted"
	}

	return errors
}
