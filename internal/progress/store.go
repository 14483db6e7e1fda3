// Package progress defines the durable key-value layer behind the wizard.
// The wizard never talks to a storage medium directly; it saves and loads
// snapshots through Store, so the backend can be swapped between memory,
// sqlite and redis without touching wizard logic.
package progress

import (
	"context"
	"errors"
	"time"

	"github.com/quietpines/sondera/internal/models"
)

var (
	// ErrNoSnapshot is returned by Load when nothing is stored for the user.
	ErrNoSnapshot = errors.New("no onboarding snapshot")

	// ErrCorruptSnapshot is returned by Load when a stored snapshot cannot
	// be decoded. The caller clears the entry and treats it as absent.
	ErrCorruptSnapshot = errors.New("corrupt onboarding snapshot")
)

// Snapshot is the durable form of a wizard session: the step to resume at,
// the sanitized data, and the advisory correlation values. All entries for
// a user are written and cleared together.
type Snapshot struct {
	Step      int                   `json:"step"`
	Data      models.OnboardingData `json:"data"`
	SessionID string                `json:"sessionId"`
	Email     string                `json:"email"`
	SavedAt   time.Time             `json:"savedAt"`
}

type Store interface {
	Save(ctx context.Context, userID uint, snapshot Snapshot) error
	Load(ctx context.Context, userID uint) (Snapshot, error)
	Clear(ctx context.Context, userID uint) error
}
