package models

// FriendStatus is the state of a friend edge.
type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
)

// FriendEdge is a directed friend relationship from owner to friend.
// A reciprocal relationship requires two edges; the system never creates
// the reverse edge implicitly.
type FriendEdge struct {
	OwnerID  string       `json:"owner_id"`
	FriendID string       `json:"friend_id"`
	Status   FriendStatus `json:"status"`

	// CreatedAt is the Unix timestamp when the edge was created.
	CreatedAt int64 `json:"created_at"`
}

// Friend is a friend edge joined with the friend's profile, as returned
// by friend listings.
type Friend struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"display_name"`
	Email       string       `json:"email"`
	Status      FriendStatus `json:"status"`
}
