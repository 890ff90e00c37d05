package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/storage"
)

// GroupService manages groups and memberships.
type GroupService struct {
	store   storage.Store
	timeout time.Duration
}

// NewGroupService creates a GroupService with the given storage backend.
func NewGroupService(store storage.Store, timeout time.Duration) *GroupService {
	return &GroupService{store: store, timeout: timeout}
}

// CreateGroup creates a new group and inserts the creator as an admin
// member in the same transaction.
func (s *GroupService) CreateGroup(ctx context.Context, name, creatorID string) (*models.Group, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperr.Validationf("group name is required")
	}

	group := &models.Group{Name: name, CreatedBy: creatorID}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("CreateGroup failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Group created", "group_id", group.ID, "name", group.Name)
	return group, nil
}

// GetGroup retrieves a group by ID.
func (s *GroupService) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	return s.store.GetGroup(ctx, groupID)
}

// ListGroups returns every group the member belongs to.
func (s *GroupService) ListGroups(ctx context.Context, memberID string) ([]models.Group, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	return s.store.ListGroupsForMember(ctx, memberID)
}

// AddMember inserts a membership. The member must exist; the group must
// exist; the pair must not already be a membership.
func (s *GroupService) AddMember(ctx context.Context, groupID, memberID string, isAdmin bool) (*models.Membership, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.GetMemberByID(ctx, memberID); err != nil {
		return nil, err
	}

	membership, err := s.store.AddMember(ctx, groupID, memberID, isAdmin)
	if err != nil {
		slog.Error("AddMember failed", "group_id", groupID, "member_id", memberID, "error", err)
		return nil, err
	}

	slog.Info("Member added to group", "group_id", groupID, "member_id", memberID, "is_admin", isAdmin)
	return membership, nil
}

// IsMember reports whether the member belongs to the group. Pure query.
func (s *GroupService) IsMember(ctx context.Context, groupID, memberID string) (bool, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	return s.store.IsMember(ctx, groupID, memberID)
}

// ListMembers returns the group roster ordered by join time ascending.
func (s *GroupService) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListMembers(ctx, groupID)
}
