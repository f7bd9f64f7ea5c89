package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested entity does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidCredentials is the single failure value for authentication:
	// a missing user and a wrong password are indistinguishable to callers.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrRoleNotFound is returned when a role name cannot be resolved.
	ErrRoleNotFound = errors.New("role not found")

	// ErrInvalidProgress is returned when a project progress value falls
	// outside 0–100.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")

	// ErrInvalidSupervisor is returned when a profile's supervisor does not
	// exist or does not hold an administrative-tier role.
	ErrInvalidSupervisor = errors.New("supervisor must be an existing user with an administrative role")
)

// EmailTakenError reports an email-uniqueness conflict, carrying the id of
// the user already holding the address.
type EmailTakenError struct {
	Email  string
	UserID uint
}

func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("email %s is already used by user %d", e.Email, e.UserID)
}
