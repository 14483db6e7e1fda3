package models

import "time"

// OnboardingProgress is the durable row behind the sqlite progress store:
// one snapshot per user, last write wins.
type OnboardingProgress struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"uniqueIndex;not null"`
	Step      int       `gorm:"not null;default:1"`
	DataJSON  string    `gorm:"not null"`
	SessionID string    `gorm:"not null;default:''"`
	Email     string    `gorm:"not null;default:''"`
	SavedAt   time.Time `gorm:"not null"`
}
