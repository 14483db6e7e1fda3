package services

import (
	"encoding/json"
	"fmt"

	"github.com/quietpines/sondera/internal/models"
)

// StepPatch is a partial update produced by one step screen. Fields are
// pointers: nil leaves the current value alone, so a patch to one flag in
// a nested group preserves its siblings. Toggle semantics (add/remove a
// slot, flip a flag) are computed by the caller; applying the same patch
// twice yields the same record.
type StepPatch interface {
	Step() int
	Apply(data *models.OnboardingData)
}

func assignString(target *string, value *string) {
	if value != nil {
		*target = *value
	}
}

func assignBool(target *bool, value *bool) {
	if value != nil {
		*target = *value
	}
}

func assignInt(target *int, value *int) {
	if value != nil {
		*target = *value
	}
}

func assignFileRef(target *models.FileRef, value *models.FileRef) {
	if value != nil {
		*target = *value
	}
}

type AccountPatch struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Email     *string `json:"email"`
	Federated *bool   `json:"federated"`
}

func (patch AccountPatch) Step() int { return models.StepAccount }

func (patch AccountPatch) Apply(data *models.OnboardingData) {
	assignString(&data.Account.FirstName, patch.FirstName)
	assignString(&data.Account.LastName, patch.LastName)
	assignString(&data.Account.Email, patch.Email)
	assignBool(&data.Account.Federated, patch.Federated)
}

type PersonalPatch struct {
	Phone       *string   `json:"phone"`
	DateOfBirth *string   `json:"dateOfBirth"`
	Pronouns    *string   `json:"pronouns"`
	Languages   *[]string `json:"languages"`
}

func (patch PersonalPatch) Step() int { return models.StepPersonal }

func (patch PersonalPatch) Apply(data *models.OnboardingData) {
	assignString(&data.Personal.Phone, patch.Phone)
	assignString(&data.Personal.DateOfBirth, patch.DateOfBirth)
	assignString(&data.Personal.Pronouns, patch.Pronouns)
	if patch.Languages != nil {
		data.Personal.Languages = append([]string{}, (*patch.Languages)...)
	}
}

type AddressPatch struct {
	PracticeName *string `json:"practiceName"`
	Street       *string `json:"street"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	PostalCode   *string `json:"postalCode"`
}

func (patch AddressPatch) Step() int { return models.StepAddress }

func (patch AddressPatch) Apply(data *models.OnboardingData) {
	assignString(&data.Address.PracticeName, patch.PracticeName)
	assignString(&data.Address.Street, patch.Street)
	assignString(&data.Address.City, patch.City)
	assignString(&data.Address.State, patch.State)
	assignString(&data.Address.PostalCode, patch.PostalCode)
}

type ProfilePatch struct {
	ProfilePhoto *models.FileRef `json:"profilePhoto"`
	ShortBio     *string         `json:"shortBio"`
	ExtendedBio  *string         `json:"extendedBio"`
}

func (patch ProfilePatch) Step() int { return models.StepProfile }

func (patch ProfilePatch) Apply(data *models.OnboardingData) {
	assignFileRef(&data.Profile.ProfilePhoto, patch.ProfilePhoto)
	assignString(&data.Profile.ShortBio, patch.ShortBio)
	assignString(&data.Profile.ExtendedBio, patch.ExtendedBio)
}

type LicensePatch struct {
	LicenseType     *string         `json:"licenseType"`
	LicenseNumber   *string         `json:"licenseNumber"`
	LicenseState    *string         `json:"licenseState"`
	ExpiryDate      *string         `json:"expiryDate"`
	LicenseDocument *models.FileRef `json:"licenseDocument"`
}

func (patch LicensePatch) Step() int { return models.StepLicense }

func (patch LicensePatch) Apply(data *models.OnboardingData) {
	assignString(&data.License.LicenseType, patch.LicenseType)
	assignString(&data.License.LicenseNumber, patch.LicenseNumber)
	assignString(&data.License.LicenseState, patch.LicenseState)
	assignString(&data.License.ExpiryDate, patch.ExpiryDate)
	assignFileRef(&data.License.LicenseDocument, patch.LicenseDocument)
}

type CapacityPatch struct {
	YearsOfExperience   *int `json:"yearsOfExperience"`
	MaxCaseloadCapacity *int `json:"maxCaseloadCapacity"`
	NewClientsCapacity  *int `json:"newClientsCapacity"`
}

func (patch CapacityPatch) Step() int { return models.StepCapacity }

func (patch CapacityPatch) Apply(data *models.OnboardingData) {
	assignInt(&data.Capacity.YearsOfExperience, patch.YearsOfExperience)
	assignInt(&data.Capacity.MaxCaseloadCapacity, patch.MaxCaseloadCapacity)
	assignInt(&data.Capacity.NewClientsCapacity, patch.NewClientsCapacity)
}

type SpecialtiesPatch struct {
	Anxiety         *bool `json:"anxiety"`
	Depression      *bool `json:"depression"`
	Trauma          *bool `json:"trauma"`
	Couples         *bool `json:"couples"`
	Adolescents     *bool `json:"adolescents"`
	Addiction       *bool `json:"addiction"`
	Grief           *bool `json:"grief"`
	EatingDisorders *bool `json:"eatingDisorders"`
}

func (patch SpecialtiesPatch) Step() int { return models.StepSpecialties }

func (patch SpecialtiesPatch) Apply(data *models.OnboardingData) {
	flags := &data.Specialties
	assignBool(&flags.Anxiety, patch.Anxiety)
	assignBool(&flags.Depression, patch.Depression)
	assignBool(&flags.Trauma, patch.Trauma)
	assignBool(&flags.Couples, patch.Couples)
	assignBool(&flags.Adolescents, patch.Adolescents)
	assignBool(&flags.Addiction, patch.Addiction)
	assignBool(&flags.Grief, patch.Grief)
	assignBool(&flags.EatingDisorders, patch.EatingDisorders)
}

type ModalitiesPatch struct {
	CBT           *bool `json:"cbt"`
	DBT           *bool `json:"dbt"`
	EMDR          *bool `json:"emdr"`
	ACT           *bool `json:"act"`
	Psychodynamic *bool `json:"psychodynamic"`
	FamilySystems *bool `json:"familySystems"`
}

type FormatsPatch struct {
	Video    *bool `json:"video"`
	Phone    *bool `json:"phone"`
	InPerson *bool `json:"inPerson"`
}

type ApproachPatch struct {
	Modalities *ModalitiesPatch `json:"modalities"`
	Formats    *FormatsPatch    `json:"formats"`
}

func (patch ApproachPatch) Step() int { return models.StepApproach }

func (patch ApproachPatch) Apply(data *models.OnboardingData) {
	if patch.Modalities != nil {
		flags := &data.Approach.Modalities
		assignBool(&flags.CBT, patch.Modalities.CBT)
		assignBool(&flags.DBT, patch.Modalities.DBT)
		assignBool(&flags.EMDR, patch.Modalities.EMDR)
		assignBool(&flags.ACT, patch.Modalities.ACT)
		assignBool(&flags.Psychodynamic, patch.Modalities.Psychodynamic)
		assignBool(&flags.FamilySystems, patch.Modalities.FamilySystems)
	}
	if patch.Formats != nil {
		flags := &data.Approach.Formats
		assignBool(&flags.Video, patch.Formats.Video)
		assignBool(&flags.Phone, patch.Formats.Phone)
		assignBool(&flags.InPerson, patch.Formats.InPerson)
	}
}

// AvailabilityPatch merges at the day level: only the days present in the
// map are replaced, the other days keep their slots.
type AvailabilityPatch struct {
	Timezone *string                      `json:"timezone"`
	Days     map[string][]models.TimeSlot `json:"days"`
}

func (patch AvailabilityPatch) Step() int { return models.StepAvailability }

func (patch AvailabilityPatch) Apply(data *models.OnboardingData) {
	assignString(&data.Availability.Timezone, patch.Timezone)
	if data.Availability.Schedule == nil {
		data.Availability.Schedule = models.NewWeeklySchedule()
	}
	for day, slots := range patch.Days {
		if !models.IsWeekday(day) {
			continue
		}
		copied := make([]models.TimeSlot, len(slots))
		copy(copied, slots)
		data.Availability.Schedule[day] = copied
	}
}

type InsurancePanelsPatch struct {
	Aetna            *bool `json:"aetna"`
	Cigna            *bool `json:"cigna"`
	UnitedHealthcare *bool `json:"unitedHealthcare"`
	BlueCross        *bool `json:"blueCross"`
	Medicare         *bool `json:"medicare"`
	PrivatePay       *bool `json:"privatePay"`
}

type CompliancePatch struct {
	InsurancePanels         *InsurancePanelsPatch `json:"insurancePanels"`
	MalpracticeCarrier      *string               `json:"malpracticeCarrier"`
	MalpracticePolicyNumber *string               `json:"malpracticePolicyNumber"`
	HIPAAAcknowledged       *bool                 `json:"hipaaAcknowledged"`
	TermsAccepted           *bool                 `json:"termsAccepted"`
}

func (patch CompliancePatch) Step() int { return models.StepCompliance }

func (patch CompliancePatch) Apply(data *models.OnboardingData) {
	if patch.InsurancePanels != nil {
		flags := &data.Compliance.InsurancePanels
		assignBool(&flags.Aetna, patch.InsurancePanels.Aetna)
		assignBool(&flags.Cigna, patch.InsurancePanels.Cigna)
		assignBool(&flags.UnitedHealthcare, patch.InsurancePanels.UnitedHealthcare)
		assignBool(&flags.BlueCross, patch.InsurancePanels.BlueCross)
		assignBool(&flags.Medicare, patch.InsurancePanels.Medicare)
		assignBool(&flags.PrivatePay, patch.InsurancePanels.PrivatePay)
	}
	assignString(&data.Compliance.MalpracticeCarrier, patch.MalpracticeCarrier)
	assignString(&data.Compliance.MalpracticePolicyNumber, patch.MalpracticePolicyNumber)
	assignBool(&data.Compliance.HIPAAAcknowledged, patch.HIPAAAcknowledged)
	assignBool(&data.Compliance.TermsAccepted, patch.TermsAccepted)
}

// DecodeStepPatch parses a request body into the patch type for the given
// step number.
func DecodeStepPatch(step int, body []byte) (StepPatch, error) {
	switch step {
	case models.StepAccount:
		var patch AccountPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepPersonal:
		var patch PersonalPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepAddress:
		var patch AddressPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepProfile:
		var patch ProfilePatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepLicense:
		var patch LicensePatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepCapacity:
		var patch CapacityPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepSpecialties:
		var patch SpecialtiesPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepApproach:
		var patch ApproachPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepAvailability:
		var patch AvailabilityPatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	case models.StepCompliance:
		var patch CompliancePatch
		if err := json.Unmarshal(body, &patch); err != nil {
			return nil, err
		}
		return patch, nil
	default:
		return nil, fmt.Errorf("unknown wizard step %d", step)
	}
}
