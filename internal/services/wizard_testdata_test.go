package services

import (
	"strings"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

var testNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

// completeOnboardingData returns a record that passes every step's
// validation as of testNow.
func completeOnboardingData() models.OnboardingData {
	data := models.NewOnboardingData()

	data.Account = models.AccountDetails{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane.doe@example.com",
	}
	data.Personal = models.PersonalDetails{
		Phone:       "+1 555 0100",
		DateOfBirth: "1988-04-12",
		Pronouns:    "she/her",
		Languages:   []string{"English", "Spanish"},
	}
	data.Address = models.PracticeAddress{
		PracticeName: "Quiet Pines Counseling",
		Street:       "214 Cedar Ave",
		City:         "Portland",
		State:        "OR",
		PostalCode:   "97204",
	}
	data.Profile = models.ProfileDetails{
		ProfilePhoto: models.FileRef{Kind: models.FileStored, Filename: "jane.jpg"},
		ShortBio:     "Licensed therapist focused on anxiety and trauma recovery.",
		ExtendedBio:  strings.Repeat("I work with adults navigating anxiety and life transitions. ", 4),
	}
	data.License = models.LicenseDetails{
		LicenseType:     "LMFT",
		LicenseNumber:   "MFT-88219",
		LicenseState:    "OR",
		ExpiryDate:      "2030-06-30",
		LicenseDocument: models.FileRef{Kind: models.FileStored, Filename: "license.pdf"},
	}
	data.Capacity = models.CapacityPlan{
		YearsOfExperience:   9,
		MaxCaseloadCapacity: 25,
		NewClientsCapacity:  8,
	}
	data.Specialties.Anxiety = true
	data.Specialties.Trauma = true
	data.Approach.Modalities.CBT = true
	data.Approach.Formats.Video = true
	data.Availability.Timezone = "America/Los_Angeles"
	data.Availability.Schedule["monday"] = []models.TimeSlot{
		{ID: "mon-1", StartTime: "09:00", EndTime: "12:00"},
	}
	data.Availability.Schedule["wednesday"] = []models.TimeSlot{
		{ID: "wed-1", StartTime: "13:00", EndTime: "17:00"},
	}
	data.Compliance = models.ComplianceDetails{
		InsurancePanels:         models.InsurancePanels{PrivatePay: true},
		MalpracticeCarrier:      "CPH & Associates",
		MalpracticePolicyNumber: "CPH-204481",
		HIPAAAcknowledged:       true,
		TermsAccepted:           true,
	}

	return data
}
