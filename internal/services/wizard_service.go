package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/progress"
	"github.com/quietpines/sondera/internal/remote"
	"github.com/quietpines/sondera/internal/security"
)

var (
	// ErrResumePending blocks every wizard mutation until the user answers
	// the resume prompt.
	ErrResumePending = errors.New("resume decision pending")

	// ErrNoResumePending is returned by resume actions when no prompt is open.
	ErrNoResumePending = errors.New("no resume decision pending")

	// ErrStepMismatch is returned when a submission targets a step other
	// than the active one. The wizard only ever moves one step at a time.
	ErrStepMismatch = errors.New("step does not match the active step")

	ErrStepOutOfRange = errors.New("step out of range")

	// ErrNotOnFinalStep rejects registration attempts from any earlier step.
	ErrNotOnFinalStep = errors.New("registration requires the final step")
)

const (
	sessionIDLength   = 24
	sessionIDAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ProfileAPI is the remote collaborator the wizard hydrates from and
// mirrors progress to. A nil ProfileAPI disables both, which is the
// standalone deployment mode.
type ProfileAPI interface {
	GetProfile(ctx context.Context, userID uint, token string) (remote.Profile, error)
	SaveProgress(ctx context.Context, userID uint, token string, step int, data models.OnboardingData) error
}

// WizardUserRepository marks a user's onboarding finished after a
// successful registration.
type WizardUserRepository interface {
	MarkOnboardingCompleted(userID uint) error
}

// WizardState is the client-facing view of a session. Data is always a
// sanitized copy; mutating it cannot reach the live session.
type WizardState struct {
	Step           int
	TotalSteps     int
	Data           models.OnboardingData
	SessionID      string
	ResumeRequired bool
	ResumeStep     int
}

// wizardSession is the live in-memory record for one user. resumeStep is
// non-zero while the resume prompt is open; the gate holds the restored
// data but keeps the visible step at the start until the user decides.
type wizardSession struct {
	step       int
	data       models.OnboardingData
	sessionID  string
	email      string
	savedAt    time.Time
	resumeStep int
}

// WizardService owns the step sequence for every active session: it
// restores or hydrates state, applies step patches, validates, persists
// and decides when the pointer may advance. All operations for one user
// are serialized on a per-user lock; storage and remote calls happen
// inside it, which is acceptable because a single user drives one wizard.
type WizardService struct {
	store       progress.Store
	profiles    ProfileAPI
	users       WizardUserRepository
	submissions *SubmissionService
	rules       ValidationRules
	logger      *zap.Logger
	now         func() time.Time

	mu       sync.Mutex
	locks    map[uint]*sync.Mutex
	sessions map[uint]*wizardSession
}

func NewWizardService(
	store progress.Store,
	profiles ProfileAPI,
	users WizardUserRepository,
	submissions *SubmissionService,
	rules ValidationRules,
	logger *zap.Logger,
) *WizardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardService{
		store:       store,
		profiles:    profiles,
		users:       users,
		submissions: submissions,
		rules:       rules,
		logger:      logger,
		now:         time.Now,
		locks:       make(map[uint]*sync.Mutex),
		sessions:    make(map[uint]*wizardSession),
	}
}

func (service *WizardService) userLock(userID uint) *sync.Mutex {
	service.mu.Lock()
	defer service.mu.Unlock()
	lock, ok := service.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		service.locks[userID] = lock
	}
	return lock
}

func (service *WizardService) session(userID uint) *wizardSession {
	service.mu.Lock()
	defer service.mu.Unlock()
	return service.sessions[userID]
}

func (service *WizardService) setSession(userID uint, session *wizardSession) {
	service.mu.Lock()
	defer service.mu.Unlock()
	if session == nil {
		delete(service.sessions, userID)
		return
	}
	service.sessions[userID] = session
}

// State returns the current wizard view, creating or restoring the
// session on first contact.
func (service *WizardService) State(ctx context.Context, user Identity) (WizardState, error) {
	lock := service.userLock(user.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := service.ensureSession(ctx, user)
	return service.stateOf(session), nil
}

// SubmitStep merges a patch into the given step, validates the merged
// record and, when clean, commits it and advances the pointer by one.
// A validation failure leaves both the session and the stored snapshot
// untouched.
func (service *WizardService) SubmitStep(ctx context.Context, user Identity, step int, patch StepPatch) (WizardState, FieldErrors, error) {
	lock := service.userLock(user.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := service.ensureSession(ctx, user)
	if session.resumeStep > 0 {
		return service.stateOf(session), nil, ErrResumePending
	}
	if step < models.FirstStep || step > models.TotalSteps {
		return service.stateOf(session), nil, ErrStepOutOfRange
	}
	if step != session.step {
		return service.stateOf(session), nil, ErrStepMismatch
	}
	if patch != nil && patch.Step() != step {
		return service.stateOf(session), nil, ErrStepMismatch
	}

	merged := session.data.Clone()
	if patch != nil {
		patch.Apply(&merged)
	}

	fieldErrors := ValidateStep(step, merged, service.rules, service.now())
	if !fieldErrors.IsEmpty() {
		return service.stateOf(session), fieldErrors, nil
	}

	session.data = merged
	if step == models.StepAccount && merged.Account.Email != "" {
		session.email = merged.Account.Email
	}
	service.saveSnapshot(ctx, user.UserID, session)

	if session.step < models.TotalSteps {
		service.mirrorRemote(ctx, user, session)
		session.step++
		service.saveSnapshot(ctx, user.UserID, session)
	}

	return service.stateOf(session), nil, nil
}

// Previous moves the pointer back one step. Entered data stays in place;
// going back never discards anything.
func (service *WizardService) Previous(ctx context.Context, user Identity) (WizardState, error) {
	lock := service.userLock(user.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := service.ensureSession(ctx, user)
	if session.resumeStep > 0 {
		return service.stateOf(session), ErrResumePending
	}
	if session.step > models.FirstStep {
		session.step--
		service.saveSnapshot(ctx, user.UserID, session)
	}
	return service.stateOf(session), nil
}

// Continue answers the resume prompt by jumping to the recorded step with
// the restored data intact.
func (service *WizardService) Continue(ctx context.Context, user Identity) (WizardState, error) {
	lock := service.userLock(user.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := service.ensureSession(ctx, user)
	if session.resumeStep == 0 {
		return service.stateOf(session), ErrNoResumePending
	}
	session.step = session.resumeStep
	session.resumeStep = 0
	service.saveSnapshot(ctx, user.UserID, session)
	return service.stateOf(session), nil
}

// StartOver answers the resume prompt by discarding the stored
// application: persistence is cleared and the session restarts empty at
// the first step. The caller signs the user out afterwards.
func (service *WizardService) StartOver(ctx context.Context, user Identity) (WizardState, error) {
	lock := service.userLock(user.UserID)
	lock.Lock()
	defer lock.Unlock()

	if err := service.store.Clear(ctx, user.UserID); err != nil {
		service.logger.Warn("clear onboarding snapshot failed",
			zap.Uint("user_id", user.UserID), zap.Error(err))
	}
	session := service.newSession(user)
	service.setSession(user.UserID, session)
	return service.stateOf(session), nil
}

// Submit runs the final validation and the registration call, then maps
// the reply to an outcome. On success the stored snapshot is cleared and
// the user is marked as onboarded before the outcome is returned.
func (service *WizardService) Submit(ctx context.Context, user Identity) (SubmissionOutcome, FieldErrors, error) {
	lock := service.userLock(user.UserID)
	lock.Lock()
	defer lock.Unlock()

	session := service.ensureSession(ctx, user)
	if session.resumeStep > 0 {
		return SubmissionOutcome{}, nil, ErrResumePending
	}
	if session.step != models.TotalSteps {
		return SubmissionOutcome{}, nil, ErrNotOnFinalStep
	}

	fieldErrors := ValidateStep(models.TotalSteps, session.data, service.rules, service.now())
	if !fieldErrors.IsEmpty() {
		return SubmissionOutcome{}, fieldErrors, nil
	}

	outcome, err := service.submissions.Submit(ctx, user.Token, session.data, session.sessionID)
	if err != nil {
		return SubmissionOutcome{}, nil, err
	}

	if outcome.ClearState {
		if err := service.store.Clear(ctx, user.UserID); err != nil {
			service.logger.Warn("clear onboarding snapshot failed",
				zap.Uint("user_id", user.UserID), zap.Error(err))
		}
		service.setSession(user.UserID, nil)
		if service.users != nil && outcome.Registered {
			if err := service.users.MarkOnboardingCompleted(user.UserID); err != nil {
				service.logger.Warn("mark onboarding completed failed",
					zap.Uint("user_id", user.UserID), zap.Error(err))
			}
		}
	}
	return outcome, nil, nil
}

// ensureSession returns the live session for the user, building one from
// local storage, remote hydration or scratch. Storage trouble is recovered
// locally and never surfaces to the caller.
func (service *WizardService) ensureSession(ctx context.Context, user Identity) *wizardSession {
	if session := service.session(user.UserID); session != nil {
		return session
	}

	session := service.restoreSession(ctx, user)
	service.setSession(user.UserID, session)
	return session
}

func (service *WizardService) restoreSession(ctx context.Context, user Identity) *wizardSession {
	snapshot, err := service.store.Load(ctx, user.UserID)
	switch {
	case err == nil:
		return service.sessionFromSnapshot(user, snapshot)
	case errors.Is(err, progress.ErrCorruptSnapshot):
		service.logger.Warn("discarding corrupt onboarding snapshot",
			zap.Uint("user_id", user.UserID))
		if clearErr := service.store.Clear(ctx, user.UserID); clearErr != nil {
			service.logger.Warn("clear onboarding snapshot failed",
				zap.Uint("user_id", user.UserID), zap.Error(clearErr))
		}
	case errors.Is(err, progress.ErrNoSnapshot):
		// Fall through to hydration.
	default:
		service.logger.Warn("load onboarding snapshot failed",
			zap.Uint("user_id", user.UserID), zap.Error(err))
	}

	return service.hydrateSession(ctx, user)
}

func (service *WizardService) sessionFromSnapshot(user Identity, snapshot progress.Snapshot) *wizardSession {
	session := &wizardSession{
		step:      models.FirstStep,
		data:      snapshot.Data.Normalized(),
		sessionID: snapshot.SessionID,
		email:     snapshot.Email,
		savedAt:   snapshot.SavedAt,
	}
	if session.sessionID == "" {
		session.sessionID = service.newSessionID()
	}
	if session.email == "" {
		session.email = user.Email
	}
	if snapshot.Step > models.FirstStep {
		// In-progress application: hold at the start until the user answers
		// the resume prompt.
		session.resumeStep = snapshot.Step
	}
	return session
}

// hydrateSession consults the profile service when local storage has
// nothing. A server-side application above step 1 opens the resume gate
// and is copied into local storage; a federated identity with no profile
// pre-fills the account step and skips past it.
func (service *WizardService) hydrateSession(ctx context.Context, user Identity) *wizardSession {
	if service.profiles == nil || user.Token == "" {
		return service.seededSession(ctx, user)
	}

	profile, err := service.profiles.GetProfile(ctx, user.UserID, user.Token)
	switch {
	case err == nil:
		if !profile.OnboardingCompleted && profile.OnboardingStep > models.FirstStep {
			session := &wizardSession{
				step:       models.FirstStep,
				data:       profile.Data.Normalized(),
				sessionID:  service.newSessionID(),
				email:      user.Email,
				resumeStep: profile.OnboardingStep,
			}
			if session.data.Account.Email != "" {
				session.email = session.data.Account.Email
			}
			service.saveSnapshotAtStep(ctx, user.UserID, session, profile.OnboardingStep)
			return session
		}
	case errors.Is(err, remote.ErrProfileNotFound):
		// Nothing server-side; a fresh or seeded start.
	default:
		service.logger.Warn("profile hydration failed",
			zap.Uint("user_id", user.UserID), zap.Error(err))
	}

	return service.seededSession(ctx, user)
}

// seededSession starts a fresh application. A federated identity already
// has verified account details, so those are pre-filled and the wizard
// opens on the personal step instead.
func (service *WizardService) seededSession(ctx context.Context, user Identity) *wizardSession {
	session := service.newSession(user)
	if !user.Federated {
		return session
	}

	first, last := splitDisplayName(user.DisplayName)
	session.data.Account = models.AccountDetails{
		FirstName: first,
		LastName:  last,
		Email:     user.Email,
		Federated: true,
	}
	if ValidateStep(models.StepAccount, session.data, service.rules, service.now()).IsEmpty() {
		session.step = models.StepPersonal
		service.saveSnapshot(ctx, user.UserID, session)
	}
	return session
}

func (service *WizardService) newSession(user Identity) *wizardSession {
	return &wizardSession{
		step:      models.FirstStep,
		data:      models.NewOnboardingData(),
		sessionID: service.newSessionID(),
		email:     user.Email,
	}
}

func (service *WizardService) newSessionID() string {
	id, err := security.RandomString(sessionIDLength, sessionIDAlphabet)
	if err != nil {
		return uuid.NewString()
	}
	return id
}

func (service *WizardService) stateOf(session *wizardSession) WizardState {
	return WizardState{
		Step:           session.step,
		TotalSteps:     models.TotalSteps,
		Data:           SanitizeForStorage(session.data),
		SessionID:      session.sessionID,
		ResumeRequired: session.resumeStep > 0,
		ResumeStep:     session.resumeStep,
	}
}

func (service *WizardService) saveSnapshot(ctx context.Context, userID uint, session *wizardSession) {
	service.saveSnapshotAtStep(ctx, userID, session, session.step)
}

// saveSnapshotAtStep persists the session with an explicit step, used when
// the stored step must differ from the visible one (open resume gate).
// Failures are logged and never block the wizard.
func (service *WizardService) saveSnapshotAtStep(ctx context.Context, userID uint, session *wizardSession, step int) {
	session.savedAt = service.now()
	snapshot := progress.Snapshot{
		Step:      step,
		Data:      SanitizeForStorage(session.data),
		SessionID: session.sessionID,
		Email:     session.email,
		SavedAt:   session.savedAt,
	}
	if err := service.store.Save(ctx, userID, snapshot); err != nil {
		service.logger.Warn("save onboarding snapshot failed",
			zap.Uint("user_id", userID), zap.Error(err))
	}
}

// mirrorRemote pushes the just-committed step server-side, best effort.
func (service *WizardService) mirrorRemote(ctx context.Context, user Identity, session *wizardSession) {
	if service.profiles == nil || user.Token == "" {
		return
	}
	if err := service.profiles.SaveProgress(ctx, user.UserID, user.Token, session.step, SanitizeForStorage(session.data)); err != nil {
		service.logger.Warn("remote progress save failed",
			zap.Uint("user_id", user.UserID), zap.Error(err))
	}
}

func splitDisplayName(name string) (string, string) {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return "", ""
	}
	return fields[0], strings.Join(fields[1:], " ")
}
