package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/remote"
)

// Submission outcomes, in the order the classifier checks them. Every
// registration reply maps to exactly one.
const (
	OutcomeRegistered        = "registered"
	OutcomeDuplicateAccount  = "duplicate_account"
	OutcomeAlreadyRegistered = "already_registered"
	OutcomeAlreadyApproved   = "already_approved"
	OutcomeFailed            = "failed"
)

// SubmissionOutcome tells the caller what happened and what to do next.
// ClearState and SignOut are instructions, not things the classifier does
// itself; the wizard and the handler carry them out in that order.
type SubmissionOutcome struct {
	Outcome        string
	Registered     bool
	RegistrationID string
	Message        string
	Redirect       string
	ClearState     bool
	SignOut        bool
}

// RegistrationAPI is the registration endpoint as the coordinator sees it.
type RegistrationAPI interface {
	Submit(ctx context.Context, token string, payload remote.RegistrationPayload) (remote.SubmissionResponse, error)
}

// SubmissionService assembles the flat registration payload, performs the
// call and classifies the reply. Transport failures classify as a retryable
// failure rather than erroring out; the user keeps their final step.
type SubmissionService struct {
	registrations RegistrationAPI
	logger        *zap.Logger
}

func NewSubmissionService(registrations RegistrationAPI, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{registrations: registrations, logger: logger}
}

func (service *SubmissionService) Submit(ctx context.Context, token string, data models.OnboardingData, sessionID string) (SubmissionOutcome, error) {
	if service.registrations == nil {
		return SubmissionOutcome{
			Outcome: OutcomeFailed,
			Message: "Registration is not available right now. Please try again later.",
		}, nil
	}
	payload := BuildRegistrationPayload(data, sessionID)

	response, err := service.registrations.Submit(ctx, token, payload)
	if err != nil {
		service.logger.Warn("registration request failed", zap.Error(err))
		return SubmissionOutcome{
			Outcome: OutcomeFailed,
			Message: "Registration could not be completed. Please try again.",
		}, nil
	}
	return classifySubmission(response), nil
}

// BuildRegistrationPayload flattens the accumulated record into the wire
// shape. File fields contribute their stored URL when one exists, falling
// back to the filename.
func BuildRegistrationPayload(data models.OnboardingData, sessionID string) remote.RegistrationPayload {
	sanitized := SanitizeForStorage(data)
	return remote.RegistrationPayload{
		FirstName:   sanitized.Account.FirstName,
		LastName:    sanitized.Account.LastName,
		Email:       sanitized.Account.Email,
		Phone:       sanitized.Personal.Phone,
		DateOfBirth: sanitized.Personal.DateOfBirth,
		Pronouns:    sanitized.Personal.Pronouns,
		Languages:   sanitized.Personal.Languages,

		PracticeName: sanitized.Address.PracticeName,
		Street:       sanitized.Address.Street,
		City:         sanitized.Address.City,
		State:        sanitized.Address.State,
		PostalCode:   sanitized.Address.PostalCode,

		ProfilePhotoURL: fileLocation(sanitized.Profile.ProfilePhoto),
		ShortBio:        sanitized.Profile.ShortBio,
		ExtendedBio:     sanitized.Profile.ExtendedBio,

		LicenseType:        sanitized.License.LicenseType,
		LicenseNumber:      sanitized.License.LicenseNumber,
		LicenseState:       sanitized.License.LicenseState,
		LicenseExpiryDate:  sanitized.License.ExpiryDate,
		LicenseDocumentURL: fileLocation(sanitized.License.LicenseDocument),

		YearsOfExperience:   sanitized.Capacity.YearsOfExperience,
		MaxCaseloadCapacity: sanitized.Capacity.MaxCaseloadCapacity,
		NewClientsCapacity:  sanitized.Capacity.NewClientsCapacity,

		ClinicalSpecialties: sanitized.Specialties,
		TreatmentModalities: sanitized.Approach.Modalities,
		SessionFormats:      sanitized.Approach.Formats,

		Timezone:       sanitized.Availability.Timezone,
		WeeklySchedule: sanitized.Availability.Schedule,

		InsurancePanels:         sanitized.Compliance.InsurancePanels,
		MalpracticeCarrier:      sanitized.Compliance.MalpracticeCarrier,
		MalpracticePolicyNumber: sanitized.Compliance.MalpracticePolicyNumber,
		HIPAAAcknowledged:       sanitized.Compliance.HIPAAAcknowledged,
		TermsAccepted:           sanitized.Compliance.TermsAccepted,

		SessionID: sessionID,
	}
}

func fileLocation(ref models.FileRef) string {
	if ref.URL != "" {
		return ref.URL
	}
	return ref.Filename
}

func classifySubmission(response remote.SubmissionResponse) SubmissionOutcome {
	success := response.Success ||
		(response.StatusCode >= 200 && response.StatusCode < 300 && response.ErrorCode == "")

	switch {
	case success:
		return SubmissionOutcome{
			Outcome:        OutcomeRegistered,
			Registered:     true,
			RegistrationID: response.RegistrationID,
			Message:        messageOr(response.Message, "Registration submitted. Our team will review your application."),
			Redirect:       "/",
			ClearState:     true,
			SignOut:        true,
		}
	case response.ErrorCode == "DUPLICATE_ACCOUNT":
		return SubmissionOutcome{
			Outcome:  OutcomeDuplicateAccount,
			Message:  messageOr(response.Message, "An account with this email already exists. Please log in instead."),
			Redirect: "/login",
			SignOut:  true,
		}
	case response.ErrorCode == "ALREADY_REGISTERED":
		return SubmissionOutcome{
			Outcome:  OutcomeAlreadyRegistered,
			Message:  messageOr(response.Message, "This application has already been submitted."),
			Redirect: "/login",
			SignOut:  true,
		}
	case response.ErrorCode == "ALREADY_APPROVED":
		return SubmissionOutcome{
			Outcome:  OutcomeAlreadyApproved,
			Message:  messageOr(response.Message, "This application has already been approved. Please log in."),
			Redirect: "/login",
			SignOut:  true,
		}
	default:
		return SubmissionOutcome{
			Outcome: OutcomeFailed,
			Message: messageOr(response.Message, "Registration could not be completed. Please try again."),
		}
	}
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
