package services

import (
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/quietpines/sondera/internal/models"
)

type stubAuthUsers struct {
	byEmail map[string]models.User
	created []models.User
}

func newStubAuthUsers() *stubAuthUsers {
	return &stubAuthUsers{byEmail: make(map[string]models.User)}
}

func (stub *stubAuthUsers) ExistsByNormalizedEmail(email string) (bool, error) {
	_, ok := stub.byEmail[email]
	return ok, nil
}

func (stub *stubAuthUsers) FindByNormalizedEmail(email string) (models.User, error) {
	user, ok := stub.byEmail[email]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (stub *stubAuthUsers) FindByID(userID uint) (models.User, error) {
	for _, user := range stub.byEmail {
		if user.ID == userID {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (stub *stubAuthUsers) Create(user *models.User) error {
	user.ID = uint(len(stub.byEmail) + 1)
	stub.byEmail[user.Email] = *user
	stub.created = append(stub.created, *user)
	return nil
}

func TestRegisterNormalizesEmailAndHashesPassword(t *testing.T) {
	users := newStubAuthUsers()
	service := NewAuthService(users)

	user, err := service.Register("  Jane.Doe@Example.COM ", "Str0ngPass", "Jane Doe")
	if err != nil {
		t.Fatalf("Register() error: %v", err)
	}
	if user.Email != "jane.doe@example.com" {
		t.Fatalf("email = %q", user.Email)
	}
	if user.PasswordHash == "Str0ngPass" || user.PasswordHash == "" {
		t.Fatal("password stored without hashing")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ngPass")) != nil {
		t.Fatal("stored hash does not match the password")
	}
}

func TestRegisterRejectsDuplicateEmailCaseInsensitive(t *testing.T) {
	users := newStubAuthUsers()
	service := NewAuthService(users)

	if _, err := service.Register("jane@example.com", "Str0ngPass", "Jane"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := service.Register("JANE@example.com", "Str0ngPass", "Jane")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestRegisterEnforcesPasswordPolicy(t *testing.T) {
	service := NewAuthService(newStubAuthUsers())

	_, err := service.Register("jane@example.com", "weak", "Jane")
	if !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("expected ErrWeakPassword, got %v", err)
	}
}

func TestAuthenticateWrongPasswordAndMissingUserLookAlike(t *testing.T) {
	users := newStubAuthUsers()
	service := NewAuthService(users)
	if _, err := service.Register("jane@example.com", "Str0ngPass", "Jane"); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, wrongPassword := service.Authenticate("jane@example.com", "WrongPass1")
	_, missingUser := service.Authenticate("nobody@example.com", "Str0ngPass")

	if !errors.Is(wrongPassword, ErrInvalidCredentials) || !errors.Is(missingUser, ErrInvalidCredentials) {
		t.Fatalf("got %v and %v", wrongPassword, missingUser)
	}
}

func TestAuthenticateSucceedsWithNormalizedEmail(t *testing.T) {
	users := newStubAuthUsers()
	service := NewAuthService(users)
	if _, err := service.Register("jane@example.com", "Str0ngPass", "Jane"); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := service.Authenticate(" JANE@example.com ", "Str0ngPass")
	if err != nil {
		t.Fatalf("Authenticate() error: %v", err)
	}
	if user.Email != "jane@example.com" {
		t.Fatalf("email = %q", user.Email)
	}
}
