package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splithappens/splithappens/internal/apperr"
)

func TestCreateGroup_EmptyName(t *testing.T) {
	tg := newTestGroup(t)

	_, err := tg.groups.CreateGroup(context.Background(), "   ", tg.alice.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsValidation(err))
}

func TestCreateGroup_CreatorIsAdmin(t *testing.T) {
	tg := newTestGroup(t)
	ctx := context.Background()

	group, err := tg.groups.CreateGroup(ctx, "Dinner club", tg.bob.ID)
	require.NoError(t, err)

	members, err := tg.groups.ListMembers(ctx, group.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, tg.bob.ID, members[0].ID)
	assert.True(t, members[0].IsAdmin)
}

func TestAddMember_DuplicateConflicts(t *testing.T) {
	tg := newTestGroup(t)
	ctx := context.Background()

	// bob was already added by the fixture.
	_, err := tg.groups.AddMember(ctx, tg.group.ID, tg.bob.ID, false)
	require.Error(t, err)
	assert.True(t, apperr.IsConflict(err), "expected conflict, got %v", err)
}

func TestAddMember_UnknownMember(t *testing.T) {
	tg := newTestGroup(t)

	_, err := tg.groups.AddMember(context.Background(), tg.group.ID, "missing", false)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
}

func TestListMembers_JoinOrder(t *testing.T) {
	tg := newTestGroup(t)

	members, err := tg.groups.ListMembers(context.Background(), tg.group.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	// Creator joined first, then bob, then carol.
	assert.Equal(t, tg.alice.ID, members[0].ID)
}

func TestListGroups(t *testing.T) {
	tg := newTestGroup(t)
	ctx := context.Background()

	_, err := tg.groups.CreateGroup(ctx, "Second group", tg.alice.ID)
	require.NoError(t, err)

	groups, err := tg.groups.ListGroups(ctx, tg.alice.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 2)

	groups, err = tg.groups.ListGroups(ctx, tg.bob.ID)
	require.NoError(t, err)
	assert.Len(t, groups, 1)
}

func TestIsMember(t *testing.T) {
	tg := newTestGroup(t)
	ctx := context.Background()

	ok, err := tg.groups.IsMember(ctx, tg.group.ID, tg.bob.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = tg.groups.IsMember(ctx, tg.group.ID, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}
