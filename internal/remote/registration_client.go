package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

// RegistrationPayload is the flat wire shape the registration endpoint
// expects: identity and address fields at top level, flag groups as named
// sub-objects, availability as schedule plus formats and capacity.
type RegistrationPayload struct {
	FirstName   string   `json:"firstName"`
	LastName    string   `json:"lastName"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	DateOfBirth string   `json:"dateOfBirth"`
	Pronouns    string   `json:"pronouns,omitempty"`
	Languages   []string `json:"languages"`

	PracticeName string `json:"practiceName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`

	ProfilePhotoURL string `json:"profilePhotoUrl,omitempty"`
	ShortBio        string `json:"shortBio"`
	ExtendedBio     string `json:"extendedBio"`

	LicenseType        string `json:"licenseType"`
	LicenseNumber      string `json:"licenseNumber"`
	LicenseState       string `json:"licenseState"`
	LicenseExpiryDate  string `json:"licenseExpiryDate"`
	LicenseDocumentURL string `json:"licenseDocumentUrl,omitempty"`

	YearsOfExperience   int `json:"yearsOfExperience"`
	MaxCaseloadCapacity int `json:"maxCaseloadCapacity"`
	NewClientsCapacity  int `json:"newClientsCapacity"`

	ClinicalSpecialties models.ClinicalSpecialties `json:"clinicalSpecialties"`
	TreatmentModalities models.TreatmentModalities `json:"treatmentModalities"`
	SessionFormats      models.SessionFormats      `json:"sessionFormats"`

	Timezone       string                `json:"timezone"`
	WeeklySchedule models.WeeklySchedule `json:"weeklySchedule"`

	InsurancePanels         models.InsurancePanels `json:"insurancePanels"`
	MalpracticeCarrier      string                 `json:"malpracticeCarrier"`
	MalpracticePolicyNumber string                 `json:"malpracticePolicyNumber"`
	HIPAAAcknowledged       bool                   `json:"hipaaAcknowledged"`
	TermsAccepted           bool                   `json:"termsAccepted"`

	SessionID string `json:"sessionId,omitempty"`
}

// SubmissionResponse is the parsed registration reply before outcome
// classification. A transport-level failure never reaches this type.
type SubmissionResponse struct {
	StatusCode     int
	Success        bool
	RegistrationID string
	ErrorCode      string
	Message        string
}

type registrationResponseBody struct {
	Success        bool   `json:"success"`
	RegistrationID string `json:"registrationId"`
	Error          string `json:"error"`
	Message        string `json:"message"`
}

type RegistrationClient struct {
	endpoint string
	client   *http.Client
}

func NewRegistrationClient(endpoint string) *RegistrationClient {
	return &RegistrationClient{
		endpoint: endpoint,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

func (client *RegistrationClient) Submit(ctx context.Context, token string, payload RegistrationPayload) (SubmissionResponse, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return SubmissionResponse{}, fmt.Errorf("encode registration payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, client.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return SubmissionResponse{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := client.client.Do(req)
	if err != nil {
		return SubmissionResponse{}, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return SubmissionResponse{}, fmt.Errorf("read response: %w", err)
	}

	// An empty or malformed body is still a mappable outcome; the status
	// code alone classifies it.
	var body registrationResponseBody
	_ = json.Unmarshal(raw, &body)

	return SubmissionResponse{
		StatusCode:     resp.StatusCode,
		Success:        body.Success,
		RegistrationID: body.RegistrationID,
		ErrorCode:      body.Error,
		Message:        body.Message,
	}, nil
}
