package sqlite

import (
	"context"
	"time"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/models"
)

// CreateFriendEdge inserts a directed friend edge.
func (s *SQLiteStore) CreateFriendEdge(ctx context.Context, edge *models.FriendEdge) error {
	if edge.Status == "" {
		edge.Status = models.FriendPending
	}
	if edge.CreatedAt == 0 {
		edge.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO friends (owner_id, friend_id, status, created_at) VALUES (?, ?, ?, ?)",
		edge.OwnerID, edge.FriendID, string(edge.Status), edge.CreatedAt,
	)
	return storeErr(err, "create friend edge")
}

// AcceptFriendEdge transitions the owner->friend edge from pending to accepted.
func (s *SQLiteStore) AcceptFriendEdge(ctx context.Context, ownerID, friendID string) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE friends SET status = ? WHERE owner_id = ? AND friend_id = ? AND status = ?",
		string(models.FriendAccepted), ownerID, friendID, string(models.FriendPending),
	)
	if err != nil {
		return storeErr(err, "accept friend edge")
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storeErr(err, "accept friend edge")
	}
	if affected == 0 {
		return apperr.NotFoundf("no pending friend request from %s to %s", ownerID, friendID)
	}
	return nil
}

// ListFriends returns the owner's friends joined with their profiles,
// ordered by display name. Pending edges are included only when requested.
func (s *SQLiteStore) ListFriends(ctx context.Context, ownerID string, includePending bool) ([]models.Friend, error) {
	query := `SELECT m.id, m.display_name, m.email, f.status
		 FROM friends f
		 JOIN members m ON m.id = f.friend_id
		 WHERE f.owner_id = ?`
	args := []any{ownerID}
	if !includePending {
		query += " AND f.status = ?"
		args = append(args, string(models.FriendAccepted))
	}
	query += " ORDER BY m.display_name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storeErr(err, "list friends")
	}
	defer rows.Close()

	var friends []models.Friend
	for rows.Next() {
		var f models.Friend
		var status string
		if err := rows.Scan(&f.ID, &f.DisplayName, &f.Email, &status); err != nil {
			return nil, storeErr(err, "scan friend")
		}
		f.Status = models.FriendStatus(status)
		friends = append(friends, f)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "iterate friends")
	}
	return friends, nil
}
