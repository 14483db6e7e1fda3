package models

// Wizard steps, in screen order. Step numbers are part of the persistence
// contract: a stored snapshot records the step to resume at.
const (
	StepAccount      = 1
	StepPersonal     = 2
	StepAddress      = 3
	StepProfile      = 4
	StepLicense      = 5
	StepCapacity     = 6
	StepSpecialties  = 7
	StepApproach     = 8
	StepAvailability = 9
	StepCompliance   = 10

	FirstStep  = StepAccount
	TotalSteps = StepCompliance
)

type FileRefKind string

const (
	FileAbsent FileRefKind = ""
	FileUpload FileRefKind = "upload"
	FileStored FileRefKind = "stored"
)

// FileRef is the three-way shape of a file-valued field: nothing selected,
// a binary upload held in memory for this session, or a stored
// filename/URL after a persistence round-trip or remote hydration.
type FileRef struct {
	Kind     FileRefKind `json:"kind"`
	Filename string      `json:"filename,omitempty"`
	URL      string      `json:"url,omitempty"`
	Content  []byte      `json:"-"`
}

func (ref FileRef) IsAbsent() bool {
	return ref.Kind == FileAbsent
}

// Sanitized returns a copy safe to serialize: an upload collapses to its
// filename, stored and absent refs pass through unchanged.
func (ref FileRef) Sanitized() FileRef {
	if ref.Kind != FileUpload {
		return ref
	}
	return FileRef{Kind: FileStored, Filename: ref.Filename}
}

type TimeSlot struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Weekdays lists the schedule keys in display order. Every schedule carries
// all seven days, each holding an ordered slot list.
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

type WeeklySchedule map[string][]TimeSlot

func NewWeeklySchedule() WeeklySchedule {
	schedule := make(WeeklySchedule, len(Weekdays))
	for _, day := range Weekdays {
		schedule[day] = []TimeSlot{}
	}
	return schedule
}

func (schedule WeeklySchedule) Clone() WeeklySchedule {
	cloned := make(WeeklySchedule, len(schedule))
	for day, slots := range schedule {
		copied := make([]TimeSlot, len(slots))
		copy(copied, slots)
		cloned[day] = copied
	}
	return cloned
}

func IsWeekday(name string) bool {
	for _, day := range Weekdays {
		if day == name {
			return true
		}
	}
	return false
}

type AccountDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Federated bool   `json:"federated"`
}

type PersonalDetails struct {
	Phone       string   `json:"phone"`
	DateOfBirth string   `json:"dateOfBirth"`
	Pronouns    string   `json:"pronouns"`
	Languages   []string `json:"languages"`
}

type PracticeAddress struct {
	PracticeName string `json:"practiceName"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postalCode"`
}

type ProfileDetails struct {
	ProfilePhoto FileRef `json:"profilePhoto"`
	ShortBio     string  `json:"shortBio"`
	ExtendedBio  string  `json:"extendedBio"`
}

type LicenseDetails struct {
	LicenseType     string  `json:"licenseType"`
	LicenseNumber   string  `json:"licenseNumber"`
	LicenseState    string  `json:"licenseState"`
	ExpiryDate      string  `json:"expiryDate"`
	LicenseDocument FileRef `json:"licenseDocument"`
}

type CapacityPlan struct {
	YearsOfExperience   int `json:"yearsOfExperience"`
	MaxCaseloadCapacity int `json:"maxCaseloadCapacity"`
	NewClientsCapacity  int `json:"newClientsCapacity"`
}

type ClinicalSpecialties struct {
	Anxiety         bool `json:"anxiety"`
	Depression      bool `json:"depression"`
	Trauma          bool `json:"trauma"`
	Couples         bool `json:"couples"`
	Adolescents     bool `json:"adolescents"`
	Addiction       bool `json:"addiction"`
	Grief           bool `json:"grief"`
	EatingDisorders bool `json:"eatingDisorders"`
}

func (flags ClinicalSpecialties) AnySelected() bool {
	return flags.Anxiety || flags.Depression || flags.Trauma || flags.Couples ||
		flags.Adolescents || flags.Addiction || flags.Grief || flags.EatingDisorders
}

type TreatmentModalities struct {
	CBT           bool `json:"cbt"`
	DBT           bool `json:"dbt"`
	EMDR          bool `json:"emdr"`
	ACT           bool `json:"act"`
	Psychodynamic bool `json:"psychodynamic"`
	FamilySystems bool `json:"familySystems"`
}

func (flags TreatmentModalities) AnySelected() bool {
	return flags.CBT || flags.DBT || flags.EMDR || flags.ACT ||
		flags.Psychodynamic || flags.FamilySystems
}

type SessionFormats struct {
	Video    bool `json:"video"`
	Phone    bool `json:"phone"`
	InPerson bool `json:"inPerson"`
}

func (flags SessionFormats) AnySelected() bool {
	return flags.Video || flags.Phone || flags.InPerson
}

type TreatmentApproach struct {
	Modalities TreatmentModalities `json:"modalities"`
	Formats    SessionFormats      `json:"formats"`
}

type WeeklyAvailability struct {
	Timezone string         `json:"timezone"`
	Schedule WeeklySchedule `json:"schedule"`
}

type InsurancePanels struct {
	Aetna            bool `json:"aetna"`
	Cigna            bool `json:"cigna"`
	UnitedHealthcare bool `json:"unitedHealthcare"`
	BlueCross        bool `json:"blueCross"`
	Medicare         bool `json:"medicare"`
	PrivatePay       bool `json:"privatePay"`
}

func (flags InsurancePanels) AnySelected() bool {
	return flags.Aetna || flags.Cigna || flags.UnitedHealthcare ||
		flags.BlueCross || flags.Medicare || flags.PrivatePay
}

type ComplianceDetails struct {
	InsurancePanels         InsurancePanels `json:"insurancePanels"`
	MalpracticeCarrier      string          `json:"malpracticeCarrier"`
	MalpracticePolicyNumber string          `json:"malpracticePolicyNumber"`
	HIPAAAcknowledged       bool            `json:"hipaaAcknowledged"`
	TermsAccepted           bool            `json:"termsAccepted"`
}

// OnboardingData is the accumulated record of everything a therapist enters
// across the wizard. It is composed of per-step sub-records; the flat wire
// payload only exists at submission time.
type OnboardingData struct {
	Account      AccountDetails      `json:"account"`
	Personal     PersonalDetails     `json:"personal"`
	Address      PracticeAddress     `json:"address"`
	Profile      ProfileDetails      `json:"profile"`
	License      LicenseDetails      `json:"license"`
	Capacity     CapacityPlan        `json:"capacity"`
	Specialties  ClinicalSpecialties `json:"specialties"`
	Approach     TreatmentApproach   `json:"approach"`
	Availability WeeklyAvailability  `json:"availability"`
	Compliance   ComplianceDetails   `json:"compliance"`
}

// NewOnboardingData returns a record with every field at its defined
// default. No field is left nil after this point, only re-assigned.
func NewOnboardingData() OnboardingData {
	data := OnboardingData{}
	data.Personal.Languages = []string{}
	data.Availability.Schedule = NewWeeklySchedule()
	return data
}

// Normalized repairs reference-typed members after an external decode:
// hydrated or stored payloads may omit the languages list or schedule days,
// and the rest of the wizard assumes both are always present.
func (data OnboardingData) Normalized() OnboardingData {
	normalized := data.Clone()
	if normalized.Personal.Languages == nil {
		normalized.Personal.Languages = []string{}
	}
	if normalized.Availability.Schedule == nil {
		normalized.Availability.Schedule = NewWeeklySchedule()
	} else {
		for _, day := range Weekdays {
			if normalized.Availability.Schedule[day] == nil {
				normalized.Availability.Schedule[day] = []TimeSlot{}
			}
		}
	}
	return normalized
}

// Clone returns a deep copy; the schedule map and language slice are the
// only reference-typed members.
func (data OnboardingData) Clone() OnboardingData {
	cloned := data
	cloned.Personal.Languages = append([]string{}, data.Personal.Languages...)
	if data.Availability.Schedule != nil {
		cloned.Availability.Schedule = data.Availability.Schedule.Clone()
	}
	return cloned
}
