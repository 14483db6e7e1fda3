package models

import "time"

// User is a therapist account. Local registration always creates
// Federated=false rows; federated rows are written by the platform's
// identity provider into the shared users table, this service only reads
// the flag to seed the account step.
type User struct {
	ID                  uint      `gorm:"primaryKey"`
	Email               string    `gorm:"uniqueIndex;not null"`
	PasswordHash        string    `gorm:"not null"`
	DisplayName         string    `gorm:"not null;default:''"`
	Federated           bool      `gorm:"not null;default:false"`
	OnboardingCompleted bool      `gorm:"not null;default:false"`
	CreatedAt           time.Time `gorm:"not null"`
}
