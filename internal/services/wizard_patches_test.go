package services

import (
	"reflect"
	"testing"

	"github.com/quietpines/sondera/internal/models"
)

func stringPtr(value string) *string { return &value }
func boolPtr(value bool) *bool       { return &value }

func TestPatchApplyIsIdempotent(t *testing.T) {
	data := completeOnboardingData()
	patch := CapacityPatch{
		MaxCaseloadCapacity: intPtr(30),
		NewClientsCapacity:  intPtr(12),
	}

	once := data.Clone()
	patch.Apply(&once)
	twice := once.Clone()
	patch.Apply(&twice)

	if !reflect.DeepEqual(once, twice) {
		t.Fatal("applying the same patch twice changed the record")
	}
}

func intPtr(value int) *int { return &value }

func TestSpecialtiesPatchPreservesSiblingFlags(t *testing.T) {
	data := completeOnboardingData()
	data.Specialties = models.ClinicalSpecialties{Anxiety: true, Trauma: true}

	patch := SpecialtiesPatch{Couples: boolPtr(true)}
	patch.Apply(&data)

	if !data.Specialties.Anxiety || !data.Specialties.Trauma {
		t.Fatal("patching one flag wiped its siblings")
	}
	if !data.Specialties.Couples {
		t.Fatal("patched flag was not set")
	}
}

func TestApproachPatchNilGroupLeavesGroupUntouched(t *testing.T) {
	data := completeOnboardingData()
	data.Approach.Formats = models.SessionFormats{Video: true, InPerson: true}

	patch := ApproachPatch{Modalities: &ModalitiesPatch{DBT: boolPtr(true)}}
	patch.Apply(&data)

	if !data.Approach.Formats.Video || !data.Approach.Formats.InPerson {
		t.Fatal("untouched formats group changed")
	}
	if !data.Approach.Modalities.DBT || !data.Approach.Modalities.CBT {
		t.Fatalf("modalities after patch = %+v", data.Approach.Modalities)
	}
}

func TestAvailabilityPatchMergesAtDayLevel(t *testing.T) {
	data := completeOnboardingData()
	mondayBefore := data.Availability.Schedule["monday"]

	patch := AvailabilityPatch{
		Days: map[string][]models.TimeSlot{
			"friday":  {{ID: "fri-1", StartTime: "08:00", EndTime: "11:00"}},
			"someday": {{ID: "x", StartTime: "08:00", EndTime: "09:00"}},
		},
	}
	patch.Apply(&data)

	if !reflect.DeepEqual(data.Availability.Schedule["monday"], mondayBefore) {
		t.Fatal("day not named in the patch changed")
	}
	if len(data.Availability.Schedule["friday"]) != 1 || data.Availability.Schedule["friday"][0].ID != "fri-1" {
		t.Fatalf("friday after patch = %+v", data.Availability.Schedule["friday"])
	}
	if _, ok := data.Availability.Schedule["someday"]; ok {
		t.Fatal("unknown day key leaked into the schedule")
	}
}

func TestAccountPatchNilFieldsLeaveValues(t *testing.T) {
	data := completeOnboardingData()
	patch := AccountPatch{FirstName: stringPtr("Janet")}
	patch.Apply(&data)

	if data.Account.FirstName != "Janet" {
		t.Fatalf("firstName = %q", data.Account.FirstName)
	}
	if data.Account.LastName != "Doe" || data.Account.Email != "jane.doe@example.com" {
		t.Fatal("nil patch fields overwrote existing values")
	}
}

func TestDecodeStepPatchRoutesByStep(t *testing.T) {
	patch, err := DecodeStepPatch(models.StepCapacity, []byte(`{"maxCaseloadCapacity":15,"newClientsCapacity":4}`))
	if err != nil {
		t.Fatalf("DecodeStepPatch() error: %v", err)
	}
	capacity, ok := patch.(CapacityPatch)
	if !ok {
		t.Fatalf("patch type = %T", patch)
	}
	if capacity.MaxCaseloadCapacity == nil || *capacity.MaxCaseloadCapacity != 15 {
		t.Fatalf("maxCaseloadCapacity = %v", capacity.MaxCaseloadCapacity)
	}
	if capacity.YearsOfExperience != nil {
		t.Fatal("absent field decoded as non-nil")
	}

	if _, err := DecodeStepPatch(99, []byte(`{}`)); err == nil {
		t.Fatal("expected an error for an unknown step")
	}
	if _, err := DecodeStepPatch(models.StepAccount, []byte(`{"email":`)); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}
