package auth

import (
	"context"

	"github.com/splithappens/splithappens/internal/models"
)

// Authenticator is the identity-provider surface consumed by the rest of
// the system: create a credential and get a principal back, or verify one.
// Implementations can be swapped (password, OAuth, hosted provider)
// without changing the service layer.
type Authenticator interface {
	// Register creates a new member account with the given email and
	// credential, returning the created member.
	Register(ctx context.Context, email, displayName, credential string) (*models.Member, error)

	// Authenticate verifies the member's credentials and returns the
	// member if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.Member, error)

	// ValidateCredential checks if the credential meets the
	// implementation's requirements before any account is touched.
	ValidateCredential(credential string) error
}
