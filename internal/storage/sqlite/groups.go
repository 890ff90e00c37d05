package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
)

// CreateGroup persists a new group and inserts the creator as an admin
// member in the same transaction.
func (s *SQLiteStore) CreateGroup(ctx context.Context, group *models.Group) error {
	if group.ID == "" {
		group.ID = uuid.New().String()
	}
	if group.CreatedAt == 0 {
		group.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err, "begin create group")
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO groups (id, name, created_by, created_at) VALUES (?, ?, ?, ?)",
		group.ID, group.Name, group.CreatedBy, group.CreatedAt,
	)
	if err != nil {
		return storeErr(err, "insert group")
	}

	_, err = tx.ExecContext(ctx,
		"INSERT INTO group_members (group_id, member_id, is_admin, joined_at) VALUES (?, ?, 1, ?)",
		group.ID, group.CreatedBy, group.CreatedAt,
	)
	if err != nil {
		return storeErr(err, "insert creator membership")
	}

	if err := tx.Commit(); err != nil {
		return storeErr(err, "commit create group")
	}
	return nil
}

// GetGroup retrieves a group by ID.
func (s *SQLiteStore) GetGroup(ctx context.Context, groupID string) (*models.Group, error) {
	group := &models.Group{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, created_by, created_at FROM groups WHERE id = ?",
		groupID,
	).Scan(&group.ID, &group.Name, &group.CreatedBy, &group.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("group not found: %s", groupID)
	}
	if err != nil {
		return nil, storeErr(err, "get group")
	}
	return group, nil
}

// ListGroupsForMember returns every group the member belongs to,
// newest first.
func (s *SQLiteStore) ListGroupsForMember(ctx context.Context, memberID string) ([]models.Group, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.id, g.name, g.created_by, g.created_at
		 FROM groups g
		 JOIN group_members gm ON gm.group_id = g.id
		 WHERE gm.member_id = ?
		 ORDER BY g.created_at DESC`,
		memberID,
	)
	if err != nil {
		return nil, storeErr(err, "list groups")
	}
	defer rows.Close()

	var groups []models.Group
	for rows.Next() {
		var g models.Group
		if err := rows.Scan(&g.ID, &g.Name, &g.CreatedBy, &g.CreatedAt); err != nil {
			return nil, storeErr(err, "scan group")
		}
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "iterate groups")
	}
	return groups, nil
}

// AddMember inserts a membership for an existing group.
func (s *SQLiteStore) AddMember(ctx context.Context, groupID, memberID string, isAdmin bool) (*models.Membership, error) {
	// Surface a missing group as not-found rather than a FK failure.
	if _, err := s.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	membership := &models.Membership{
		GroupID:  groupID,
		MemberID: memberID,
		IsAdmin:  isAdmin,
		JoinedAt: time.Now().Unix(),
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO group_members (group_id, member_id, is_admin, joined_at) VALUES (?, ?, ?, ?)",
		groupID, memberID, boolToInt(isAdmin), membership.JoinedAt,
	)
	if err != nil {
		return nil, storeErr(err, "add member")
	}
	return membership, nil
}

// IsMember reports whether the member belongs to the group.
func (s *SQLiteStore) IsMember(ctx context.Context, groupID, memberID string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx,
		"SELECT 1 FROM group_members WHERE group_id = ? AND member_id = ?",
		groupID, memberID,
	).Scan(&one)

	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, storeErr(err, "check membership")
	}
	return true, nil
}

// ListMembers returns the group roster ordered by join time ascending.
func (s *SQLiteStore) ListMembers(ctx context.Context, groupID string) ([]models.GroupMember, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT m.id, m.display_name, m.email, gm.is_admin, gm.joined_at
		 FROM group_members gm
		 JOIN members m ON m.id = gm.member_id
		 WHERE gm.group_id = ?
		 ORDER BY gm.joined_at ASC, m.id ASC`,
		groupID,
	)
	if err != nil {
		return nil, storeErr(err, "list members")
	}
	defer rows.Close()

	var members []models.GroupMember
	for rows.Next() {
		var gm models.GroupMember
		var isAdmin int
		if err := rows.Scan(&gm.ID, &gm.DisplayName, &gm.Email, &isAdmin, &gm.JoinedAt); err != nil {
			return nil, storeErr(err, "scan group member")
		}
		gm.IsAdmin = isAdmin != 0
		members = append(members, gm)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "iterate group members")
	}
	return members, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
