package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
type User struct {
	// ID is the unique identifier for the user (UUID format).
	ID string

	// Email is the user's email address (unique). Used for login.
	Email string

	// DisplayName is the name shown in the UI.
	DisplayName string

	// PasswordHash is the bcrypt hash of the user's password.
	PasswordHash string

	// MonthlySalary is the default salary used when logging overtime. Never negative.
	MonthlySalary float64

	// IsAdmin marks administrator accounts.
	IsAdmin bool

	// UngroupedCollapsed is the display flag of the ungrouped section.
	UngroupedCollapsed bool

	// CreatedAt and UpdatedAt are Unix timestamps.
	CreatedAt int64
	UpdatedAt int64
}

// NewUser builds a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Settings holds the user-editable preferences.
type Settings struct {
	MonthlySalary      float64
	UngroupedCollapsed bool
}
