package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/quietpines/sondera/internal/db"
	"github.com/quietpines/sondera/internal/models"
	"github.com/quietpines/sondera/internal/progress"
)

func seedUser(t *testing.T) (string, *db.Repositories) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "sondera.db")
	database, err := db.OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open database: %v", err)
	}
	repositories := db.NewRepositories(database)

	hash, err := bcrypt.GenerateFromPassword([]byte("Original1"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	user := models.User{Email: "jane@example.com", PasswordHash: string(hash), DisplayName: "Jane Doe"}
	if err := repositories.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}
	return dbPath, repositories
}

func TestRunResetPasswordCommandReplacesHash(t *testing.T) {
	dbPath, repositories := seedUser(t)

	if err := RunResetPasswordCommand(dbPath, "  JANE@example.com "); err != nil {
		t.Fatalf("RunResetPasswordCommand: %v", err)
	}

	user, err := repositories.Users.FindByNormalizedEmail("jane@example.com")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Original1")) == nil {
		t.Fatal("old password still valid after reset")
	}
}

func TestRunResetPasswordCommandUnknownUser(t *testing.T) {
	dbPath, _ := seedUser(t)

	if err := RunResetPasswordCommand(dbPath, "nobody@example.com"); err == nil {
		t.Fatal("expected an error for an unknown user")
	}
}

func TestRunClearProgressCommand(t *testing.T) {
	dbPath, repositories := seedUser(t)

	snapshot := progress.Snapshot{Step: 4, Data: models.NewOnboardingData()}
	if err := repositories.Progress.Save(context.Background(), 1, snapshot); err != nil {
		t.Fatalf("seed progress: %v", err)
	}

	if err := RunClearProgressCommand(dbPath, "jane@example.com"); err != nil {
		t.Fatalf("RunClearProgressCommand: %v", err)
	}
	if _, err := repositories.Progress.Load(context.Background(), 1); !errors.Is(err, progress.ErrNoSnapshot) {
		t.Fatalf("expected cleared progress, got %v", err)
	}
}

func TestGenerateTemporaryPassword(t *testing.T) {
	const alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

	password, err := generateTemporaryPassword(4)
	if err != nil {
		t.Fatalf("generateTemporaryPassword: %v", err)
	}
	if len(password) != 8 {
		t.Fatalf("minimum len = %d, want 8", len(password))
	}

	password, err = generateTemporaryPassword(24)
	if err != nil {
		t.Fatalf("generateTemporaryPassword: %v", err)
	}
	for _, char := range password {
		if !strings.ContainsRune(alphabet, char) {
			t.Fatalf("char %q outside alphabet", char)
		}
	}
}
