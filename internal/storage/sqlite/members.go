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

// CreateMember inserts a new member into the database.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if member.CreatedAt == 0 {
		member.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO members (id, email, display_name, password_hash, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		member.ID, member.Email, member.DisplayName, member.PasswordHash, member.CreatedAt,
	)
	return storeErr(err, "create member")
}

// GetMemberByEmail retrieves a member by their email address.
func (s *SQLiteStore) GetMemberByEmail(ctx context.Context, email string) (*models.Member, error) {
	return s.getMember(ctx, "email = ?", email)
}

// GetMemberByID retrieves a member by their ID.
func (s *SQLiteStore) GetMemberByID(ctx context.Context, id string) (*models.Member, error) {
	return s.getMember(ctx, "id = ?", id)
}

func (s *SQLiteStore) getMember(ctx context.Context, where string, arg any) (*models.Member, error) {
	member := &models.Member{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, email, display_name, password_hash, created_at FROM members WHERE "+where,
		arg,
	).Scan(&member.ID, &member.Email, &member.DisplayName, &member.PasswordHash, &member.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFoundf("member not found")
	}
	if err != nil {
		return nil, storeErr(err, "get member")
	}
	return member, nil
}

// SearchMembers returns members whose display name starts with prefix,
// case-insensitively, excluding excludeID. An empty prefix matches everyone.
func (s *SQLiteStore) SearchMembers(ctx context.Context, prefix, excludeID string) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, email, display_name, password_hash, created_at
		 FROM members
		 WHERE display_name LIKE ? ESCAPE '\' AND id != ?
		 ORDER BY display_name`,
		escapeLike(prefix)+"%", excludeID,
	)
	if err != nil {
		return nil, storeErr(err, "search members")
	}
	defer rows.Close()

	var members []models.Member
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Email, &m.DisplayName, &m.PasswordHash, &m.CreatedAt); err != nil {
			return nil, storeErr(err, "scan member")
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "iterate members")
	}
	return members, nil
}

// escapeLike escapes LIKE metacharacters in user-supplied prefixes.
func escapeLike(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '%', '_', '\\':
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
