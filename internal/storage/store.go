// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/splithappens/splithappens/internal/models"
)

// MemberStore persists member accounts.
type MemberStore interface {
	// CreateMember persists a new member. Fails with a conflict error if
	// the email is already registered.
	CreateMember(ctx context.Context, member *models.Member) error

	// GetMemberByEmail retrieves a member by email.
	// Returns a not-found error if no such member exists.
	GetMemberByEmail(ctx context.Context, email string) (*models.Member, error)

	// GetMemberByID retrieves a member by ID.
	// Returns a not-found error if no such member exists.
	GetMemberByID(ctx context.Context, id string) (*models.Member, error)

	// SearchMembers returns members whose display name matches the prefix
	// (case-insensitive), excluding excludeID. Used by the add-friend UI.
	SearchMembers(ctx context.Context, prefix, excludeID string) ([]models.Member, error)
}

// GroupStore persists groups and memberships.
type GroupStore interface {
	// CreateGroup persists a new group and, in the same transaction,
	// inserts the creator as an admin member.
	CreateGroup(ctx context.Context, group *models.Group) error

	// GetGroup retrieves a group by ID.
	GetGroup(ctx context.Context, groupID string) (*models.Group, error)

	// ListGroupsForMember returns every group the member belongs to.
	ListGroupsForMember(ctx context.Context, memberID string) ([]models.Group, error)

	// AddMember inserts a membership. Fails with a not-found error if the
	// group is absent and a conflict error if the membership already exists.
	AddMember(ctx context.Context, groupID, memberID string, isAdmin bool) (*models.Membership, error)

	// IsMember reports whether the member belongs to the group.
	IsMember(ctx context.Context, groupID, memberID string) (bool, error)

	// ListMembers returns the group roster ordered by join time ascending.
	ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error)
}

// ExpenseStore persists expenses and their splits.
type ExpenseStore interface {
	// CreateExpense persists the expense and all of its splits in one
	// transaction: either everything commits or nothing does.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns a group's expenses with splits attached,
	// newest first; ties broken by insertion order.
	ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error)
}

// FriendStore persists directed friend edges.
type FriendStore interface {
	// CreateFriendEdge inserts an edge. Fails with a conflict error if an
	// edge for that ordered pair already exists.
	CreateFriendEdge(ctx context.Context, edge *models.FriendEdge) error

	// AcceptFriendEdge transitions the owner->friend edge from pending to
	// accepted. Fails with a not-found error if no pending edge exists.
	AcceptFriendEdge(ctx context.Context, ownerID, friendID string) error

	// ListFriends returns the owner's friends joined with their profiles.
	// Pending edges are included only when includePending is set.
	ListFriends(ctx context.Context, ownerID string, includePending bool) ([]models.Friend, error)
}

// SettlementStore persists settlements.
type SettlementStore interface {
	// CreateSettlement persists a new settlement.
	CreateSettlement(ctx context.Context, settlement *models.Settlement) error

	// ListSettlements returns a group's settlements, newest first.
	ListSettlements(ctx context.Context, groupID string) ([]models.Settlement, error)
}

// Store is the full persistence surface consumed by the services.
// The abstraction allows swapping storage backends without touching them.
type Store interface {
	MemberStore
	GroupStore
	ExpenseStore
	FriendStore
	SettlementStore

	// Close releases any resources held by the store.
	Close() error
}
