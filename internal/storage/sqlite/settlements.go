package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/money"
)

// CreateSettlement persists a new settlement to the database.
func (s *SQLiteStore) CreateSettlement(ctx context.Context, settlement *models.Settlement) error {
	if settlement.ID == "" {
		settlement.ID = uuid.New().String()
	}
	if settlement.CreatedAt == 0 {
		settlement.CreatedAt = time.Now().Unix()
	}

	var note any
	if settlement.Note != "" {
		note = settlement.Note
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settlements (id, group_id, from_member_id, to_member_id, amount, note, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		settlement.ID, settlement.GroupID, settlement.FromID, settlement.ToID,
		int64(settlement.Amount), note, settlement.CreatedBy, settlement.CreatedAt,
	)
	return storeErr(err, "create settlement")
}

// ListSettlements retrieves all settlements for a group, newest first.
func (s *SQLiteStore) ListSettlements(ctx context.Context, groupID string) ([]models.Settlement, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, from_member_id, to_member_id, amount, note, created_by, created_at
		 FROM settlements
		 WHERE group_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, storeErr(err, "list settlements")
	}
	defer rows.Close()

	var settlements []models.Settlement
	for rows.Next() {
		var st models.Settlement
		var note sql.NullString
		var amount int64
		if err := rows.Scan(&st.ID, &st.GroupID, &st.FromID, &st.ToID,
			&amount, &note, &st.CreatedBy, &st.CreatedAt); err != nil {
			return nil, storeErr(err, "scan settlement")
		}
		st.Amount = money.Amount(amount)
		if note.Valid {
			st.Note = note.String
		}
		settlements = append(settlements, st)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "iterate settlements")
	}
	return settlements, nil
}
