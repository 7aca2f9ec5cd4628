// Package auth implements first-party email/password authentication with
// Redis-backed sessions.
package auth

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/taskbook/api/internal/database"
	"github.com/taskbook/api/internal/models"
	"github.com/taskbook/api/internal/session"
)

// Fixed account-facing messages. Sign-in failures deliberately do not
// distinguish unknown email from wrong password.
const (
	msgEmailEmpty         = "Email cannot be empty"
	msgPasswordEmpty      = "Password cannot be empty"
	msgPasswordWeak       = "Password is too weak. Please use at least 6 characters."
	msgEmailInUse         = "This email is already registered. Please log in instead."
	msgInvalidCredentials = "Invalid email or password. Please check your credentials."
	msgGeneric            = "An error occurred. Please try again."
)

// ValidationError is a pre-flight credential failure; it never reaches the
// user store.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

// CredentialError is a rejected sign-in or sign-up.
type CredentialError struct {
	msg string
}

func (e *CredentialError) Error() string { return e.msg }

// Message normalizes auth errors into a display string.
func Message(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.msg
	}
	var ce *CredentialError
	if errors.As(err, &ce) {
		return ce.msg
	}
	return msgGeneric
}

// Service wires credential checks, the user store, and the session store.
type Service struct {
	users    *database.UserRepository
	sessions *session.Store
}

// NewService creates the auth service.
func NewService(users *database.UserRepository, sessions *session.Store) *Service {
	return &Service{users: users, sessions: sessions}
}

// validateCredentials rejects malformed input before any store call.
func validateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{msg: msgEmailEmpty}
	}
	if strings.TrimSpace(password) == "" {
		return &ValidationError{msg: msgPasswordEmpty}
	}
	return nil
}

// SignUp registers a new account and opens a session for it.
func (s *Service) SignUp(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, "", err
	}
	if len(password) < 6 {
		return nil, "", &ValidationError{msg: msgPasswordWeak}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, database.ErrAlreadyExists) {
			return nil, "", &CredentialError{msg: msgEmailInUse}
		}
		return nil, "", err
	}

	token, err := s.sessions.Create(ctx, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn verifies the password and opens a session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*models.User, string, error) {
	if err := validateCredentials(email, password); err != nil {
		return nil, "", err
	}

	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, "", &CredentialError{msg: msgInvalidCredentials}
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", &CredentialError{msg: msgInvalidCredentials}
	}

	token, err := s.sessions.Create(ctx, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut ends the session behind the token.
func (s *Service) SignOut(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Resolve maps a session token to the owning user.
func (s *Service) Resolve(ctx context.Context, token string) (*models.User, error) {
	email, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	return s.users.GetByEmail(ctx, email)
}
