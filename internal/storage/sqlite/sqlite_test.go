package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func mustMember(t *testing.T, store *SQLiteStore, email, name string) *models.Member {
	t.Helper()
	m := &models.Member{Email: email, DisplayName: name, PasswordHash: "x"}
	require.NoError(t, store.CreateMember(context.Background(), m))
	return m
}

func mustGroup(t *testing.T, store *SQLiteStore, name, creatorID string) *models.Group {
	t.Helper()
	g := &models.Group{Name: name, CreatedBy: creatorID}
	require.NoError(t, store.CreateGroup(context.Background(), g))
	return g
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mustMember(t, store, "alice@example.com", "Alice")

	err := store.CreateMember(ctx, &models.Member{
		Email: "alice@example.com", DisplayName: "Alice 2", PasswordHash: "y",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err), "expected conflict, got %v", err)
}

func TestGetMember_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetMemberByID(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSearchMembers_PrefixAndExclusion(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	mustMember(t, store, "alicia@example.com", "Alicia")
	mustMember(t, store, "bob@example.com", "Bob")

	found, err := store.SearchMembers(ctx, "Ali", alice.ID)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Alicia", found[0].DisplayName)
}

func TestCreateGroup_CreatorBecomesAdmin(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	group := mustGroup(t, store, "Roommates", alice.ID)

	ok, err := store.IsMember(ctx, group.ID, alice.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := store.ListMembers(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, alice.ID, members[0].ID)
	assert.True(t, members[0].IsAdmin)
}

func TestAddMember(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	bob := mustMember(t, store, "bob@example.com", "Bob")
	group := mustGroup(t, store, "Trip", alice.ID)

	_, err := store.AddMember(ctx, group.ID, bob.ID, false)
	require.NoError(t, err)

	// Second insert for the same pair conflicts.
	_, err = store.AddMember(ctx, group.ID, bob.ID, false)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err), "expected conflict, got %v", err)

	// Missing group is not-found, not a FK error.
	_, err = store.AddMember(ctx, "missing", bob.ID, false)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCreateExpense_AtomicWithSplits(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	bob := mustMember(t, store, "bob@example.com", "Bob")
	group := mustGroup(t, store, "Trip", alice.ID)
	_, err := store.AddMember(ctx, group.ID, bob.ID, false)
	require.NoError(t, err)

	exp := &models.Expense{
		GroupID:     group.ID,
		Description: "Dinner",
		Amount:      3000,
		PaidBy:      alice.ID,
		Date:        "2026-08-28",
		CreatedBy:   alice.ID,
		Splits: []models.Split{
			{MemberID: alice.ID, Amount: 1500},
			{MemberID: bob.ID, Amount: 1500},
		},
	}
	require.NoError(t, store.CreateExpense(ctx, exp))

	expenses, err := store.ListExpenses(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Dinner", expenses[0].Description)
	require.Len(t, expenses[0].Splits, 2)
}

func TestCreateExpense_RollbackOnBadSplit(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	group := mustGroup(t, store, "Trip", alice.ID)

	// Duplicate (expense, member) pair violates the splits UNIQUE
	// constraint mid-transaction; nothing may persist.
	exp := &models.Expense{
		GroupID:     group.ID,
		Description: "Broken",
		Amount:      2000,
		PaidBy:      alice.ID,
		Date:        "2026-08-28",
		CreatedBy:   alice.ID,
		Splits: []models.Split{
			{MemberID: alice.ID, Amount: 1000},
			{MemberID: alice.ID, Amount: 1000},
		},
	}
	err := store.CreateExpense(ctx, exp)
	require.Error(t, err)

	expenses, err := store.ListExpenses(ctx, group.ID)
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestListExpenses_NewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	group := mustGroup(t, store, "Trip", alice.ID)

	for i, desc := range []string{"first", "second", "third"} {
		exp := &models.Expense{
			GroupID:     group.ID,
			Description: desc,
			Amount:      100,
			PaidBy:      alice.ID,
			Date:        "2026-08-28",
			CreatedBy:   alice.ID,
			CreatedAt:   int64(1000 + i),
			Splits:      []models.Split{{MemberID: alice.ID, Amount: 100}},
		}
		require.NoError(t, store.CreateExpense(ctx, exp))
	}

	expenses, err := store.ListExpenses(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, expenses, 3)
	assert.Equal(t, "third", expenses[0].Description)
	assert.Equal(t, "first", expenses[2].Description)
}

func TestFriendEdges(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	bob := mustMember(t, store, "bob@example.com", "Bob")

	edge := &models.FriendEdge{OwnerID: alice.ID, FriendID: bob.ID}
	require.NoError(t, store.CreateFriendEdge(ctx, edge))
	assert.Equal(t, models.FriendPending, edge.Status)

	// Duplicate ordered pair conflicts.
	err := store.CreateFriendEdge(ctx, &models.FriendEdge{OwnerID: alice.ID, FriendID: bob.ID})
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err))

	// Pending edges are hidden by default.
	friends, err := store.ListFriends(ctx, alice.ID, false)
	require.NoError(t, err)
	assert.Empty(t, friends)

	friends, err = store.ListFriends(ctx, alice.ID, true)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, models.FriendPending, friends[0].Status)

	require.NoError(t, store.AcceptFriendEdge(ctx, alice.ID, bob.ID))

	friends, err = store.ListFriends(ctx, alice.ID, false)
	require.NoError(t, err)
	require.Len(t, friends, 1)
	assert.Equal(t, bob.ID, friends[0].ID)
	assert.Equal(t, models.FriendAccepted, friends[0].Status)

	// Accepting twice finds no pending edge.
	err = store.AcceptFriendEdge(ctx, alice.ID, bob.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSettlements(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	alice := mustMember(t, store, "alice@example.com", "Alice")
	bob := mustMember(t, store, "bob@example.com", "Bob")
	group := mustGroup(t, store, "Trip", alice.ID)

	st := &models.Settlement{
		GroupID:   group.ID,
		FromID:    bob.ID,
		ToID:      alice.ID,
		Amount:    500,
		Note:      "venmo",
		CreatedBy: bob.ID,
	}
	require.NoError(t, store.CreateSettlement(ctx, st))
	require.NotEmpty(t, st.ID)

	settlements, err := store.ListSettlements(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, settlements, 1)
	assert.Equal(t, "venmo", settlements[0].Note)
	assert.EqualValues(t, 500, settlements[0].Amount)
}
