package models

// Group represents a set of members who share expenses.
type Group struct {
	// ID is the unique identifier for the group (UUID format).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "Roommates").
	Name string `json:"name"`

	// CreatedBy is the member who created the group. The creator is
	// always inserted as an admin member at creation time.
	CreatedBy string `json:"created_by"`

	// CreatedAt is the Unix timestamp when the group was created.
	CreatedAt int64 `json:"created_at"`
}

// Membership is the fact that a member belongs to a group.
// At most one membership exists per (group, member) pair.
type Membership struct {
	GroupID  string `json:"group_id"`
	MemberID string `json:"member_id"`
	IsAdmin  bool   `json:"is_admin"`

	// JoinedAt is the Unix timestamp when the member joined.
	// Member listings are ordered by it, ascending.
	JoinedAt int64 `json:"joined_at"`
}

// GroupMember is a member as seen through a group roster: profile fields
// joined with the membership's admin flag.
type GroupMember struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	IsAdmin     bool   `json:"is_admin"`
	JoinedAt    int64  `json:"joined_at"`
}
