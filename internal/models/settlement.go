package models

import "github.com/splithappens/splithappens/internal/money"

// Settlement records a payment between group members to clear debt.
type Settlement struct {
	// ID is the unique identifier for the settlement (UUID format).
	ID string `json:"id"`

	// GroupID is the group this settlement belongs to.
	GroupID string `json:"group_id"`

	// FromID is the member who paid (debtor settling up).
	FromID string `json:"from_id"`

	// ToID is the member who received payment.
	ToID string `json:"to_id"`

	// Amount is the payment amount in minor units. Always positive.
	Amount money.Amount `json:"amount"`

	// Note is an optional description.
	Note string `json:"note,omitempty"`

	// CreatedBy is the member who recorded the settlement.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix timestamp when the settlement was recorded.
	CreatedAt int64 `json:"created_at"`
}
