package models

import "github.com/splithappens/splithappens/internal/money"

// Expense represents one shared expense recorded against a group.
// Expenses are immutable after creation: there is no edit or delete.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// GroupID is the group this expense belongs to.
	GroupID string `json:"group_id"`

	// Description is the human-readable label for the expense.
	Description string `json:"description"`

	// Amount is the total expense amount in minor units. Always positive.
	Amount money.Amount `json:"amount"`

	// PaidBy is the member who paid. Must be a group member.
	PaidBy string `json:"paid_by"`

	// Date is the expense date in YYYY-MM-DD form.
	Date string `json:"date"`

	// Notes is an optional free-form note.
	Notes string `json:"notes,omitempty"`

	// CreatedBy is the member who recorded the expense.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`

	// Splits are the per-participant shares. They are written in the same
	// transaction as the expense and always sum exactly to Amount.
	Splits []Split `json:"splits"`
}

// Split is one participant's owed share of an expense.
type Split struct {
	// ID is the unique identifier for the split (UUID format).
	ID string `json:"id"`

	// ExpenseID is the parent expense.
	ExpenseID string `json:"expense_id"`

	// MemberID is the participant who owes this share.
	MemberID string `json:"member_id"`

	// Amount is the owed share in minor units. Non-negative.
	Amount money.Amount `json:"amount"`
}
