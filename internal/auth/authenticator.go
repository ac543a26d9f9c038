package auth

import (
	"context"

	"github.com/mmynk/overtime/internal/models"
)

// Authenticator registers and verifies users. The rest of the server only
// ever sees the user ID it produces.
type Authenticator interface {
	// Register creates an account. credential is interpreted by the implementation.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate returns the user whose credential matches, or ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// ChangePassword verifies current and stores next, or returns ErrIncorrectPassword.
	ChangePassword(ctx context.Context, userID, current, next string) error

	ValidateCredential(credential string) error
}
