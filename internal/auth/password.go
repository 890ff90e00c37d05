package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/storage"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	members storage.MemberStore
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(members storage.MemberStore) *PasswordAuthenticator {
	return &PasswordAuthenticator{members: members}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < 8 {
		return apperr.Validationf("password must be at least 8 characters")
	}
	return nil
}

// Register creates a new member account with a hashed password.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, apperr.Validationf("email is required")
	}
	if strings.TrimSpace(displayName) == "" {
		return nil, apperr.Validationf("display name is required")
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &models.Member{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hash),
	}

	// The members table has a UNIQUE index on email; the store turns the
	// violation into a conflict error, so no pre-check race is possible.
	if err := a.members.CreateMember(ctx, member); err != nil {
		if apperr.IsConflict(err) {
			return nil, apperr.Conflictf("email already registered")
		}
		return nil, err
	}

	return member, nil
}

// Authenticate verifies the email and password, returning the member if valid.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.Member, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	member, err := a.members.GetMemberByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return member, nil
}
