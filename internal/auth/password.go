package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmynk/overtime/internal/models"
)

const minPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = fmt.Errorf("password must be at least %d characters", minPasswordLength)
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidAccount     = errors.New("a valid email and display name are required")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
)

// UserStorage is the user persistence the authenticator needs.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserPassword(ctx context.Context, userID, passwordHash string) error
}

type registration struct {
	Email       string `validate:"required,email"`
	DisplayName string `validate:"required,max=100"`
}

// PasswordAuthenticator authenticates with bcrypt-hashed passwords.
type PasswordAuthenticator struct {
	storage  UserStorage
	validate *validator.Validate
	cost     int
}

func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage:  storage,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		cost:     bcrypt.DefaultCost,
	}
}

// ValidateCredential enforces the minimum password length.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < minPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a user with a hashed password and a zero monthly salary.
// Emails are compared case-insensitively.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.User, error) {
	reg := registration{
		Email:       normalizeEmail(email),
		DisplayName: strings.TrimSpace(displayName),
	}
	if err := a.validate.Struct(reg); err != nil {
		return nil, ErrInvalidAccount
	}

	// Validate password strength
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	// Check if email already exists
	existing, err := a.storage.GetUserByEmail(ctx, reg.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	// Hash the password
	hash, err := a.hash(credential)
	if err != nil {
		return nil, err
	}

	// Save to storage
	user := models.NewUser(reg.Email, reg.DisplayName, hash)
	if err := a.storage.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// Authenticate checks the password against the stored hash.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	// Get user by email
	user, err := a.storage.GetUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Compare password hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// ChangePassword replaces the user's password after checking the current one.
func (a *PasswordAuthenticator) ChangePassword(ctx context.Context, userID, current, next string) error {
	user, err := a.storage.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	// Compare password hash
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(current)); err != nil {
		return ErrIncorrectPassword
	}

	// Validate password strength
	if err := a.ValidateCredential(next); err != nil {
		return err
	}

	hash, err := a.hash(next)
	if err != nil {
		return err
	}
	return a.storage.UpdateUserPassword(ctx, userID, hash)
}

func (a *PasswordAuthenticator) hash(credential string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
