package models

import (
	"time"

	"gorm.io/gorm"
)

// Credential holds the password hash separately from the user's identity
// data. Exactly one per user, created alongside the User row.
type Credential struct {
	gorm.Model

	UserID            uint      `gorm:"uniqueIndex;not null"`
	PasswordHash      string    `gorm:"not null"`
	PasswordUpdatedAt time.Time `gorm:"not null"`
}
