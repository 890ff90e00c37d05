package models

// Member represents a registered account.
type Member struct {
	// ID is the unique identifier for the member (UUID format).
	ID string `json:"id"`

	// Email is the member's email address (unique). Used for login.
	Email string `json:"email"`

	// DisplayName is the name shown to other members.
	DisplayName string `json:"display_name"`

	// PasswordHash is the bcrypt hash of the member's password.
	// Never serialized to API responses.
	PasswordHash string `json:"-"`

	// CreatedAt is the Unix timestamp when the account was created.
	CreatedAt int64 `json:"created_at"`
}
