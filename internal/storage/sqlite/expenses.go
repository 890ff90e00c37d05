package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/money"
)

// CreateExpense persists an expense and all of its splits in one
// transaction. On any failure nothing is written.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storeErr(err, "begin create expense")
	}
	defer tx.Rollback()

	var notes any
	if expense.Notes != "" {
		notes = expense.Notes
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, group_id, description, amount, paid_by, date, notes, created_by, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.GroupID, expense.Description, int64(expense.Amount),
		expense.PaidBy, expense.Date, notes, expense.CreatedBy, expense.CreatedAt,
	)
	if err != nil {
		return storeErr(err, "insert expense")
	}

	for i := range expense.Splits {
		split := &expense.Splits[i]
		if split.ID == "" {
			split.ID = uuid.New().String()
		}
		split.ExpenseID = expense.ID

		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_splits (id, expense_id, member_id, amount) VALUES (?, ?, ?, ?)",
			split.ID, split.ExpenseID, split.MemberID, int64(split.Amount),
		)
		if err != nil {
			return storeErr(err, "insert split")
		}
	}

	if err := tx.Commit(); err != nil {
		return storeErr(err, "commit create expense")
	}
	return nil
}

// ListExpenses returns a group's expenses with splits attached, newest
// first. Ties on created_at fall back to rowid, i.e. insertion order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, group_id, description, amount, paid_by, date, notes, created_by, created_at
		 FROM expenses
		 WHERE group_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		groupID,
	)
	if err != nil {
		return nil, storeErr(err, "list expenses")
	}
	defer rows.Close()

	var expenses []models.Expense
	index := make(map[string]int)
	for rows.Next() {
		var exp models.Expense
		var notes sql.NullString
		var amount int64
		if err := rows.Scan(&exp.ID, &exp.GroupID, &exp.Description, &amount,
			&exp.PaidBy, &exp.Date, &notes, &exp.CreatedBy, &exp.CreatedAt); err != nil {
			return nil, storeErr(err, "scan expense")
		}
		exp.Amount = money.Amount(amount)
		if notes.Valid {
			exp.Notes = notes.String
		}
		index[exp.ID] = len(expenses)
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr(err, "iterate expenses")
	}
	if len(expenses) == 0 {
		return nil, nil
	}

	splitRows, err := s.db.QueryContext(ctx,
		`SELECT sp.id, sp.expense_id, sp.member_id, sp.amount
		 FROM expense_splits sp
		 JOIN expenses e ON e.id = sp.expense_id
		 WHERE e.group_id = ?
		 ORDER BY sp.member_id ASC`,
		groupID,
	)
	if err != nil {
		return nil, storeErr(err, "list splits")
	}
	defer splitRows.Close()

	for splitRows.Next() {
		var split models.Split
		var amount int64
		if err := splitRows.Scan(&split.ID, &split.ExpenseID, &split.MemberID, &amount); err != nil {
			return nil, storeErr(err, "scan split")
		}
		split.Amount = money.Amount(amount)
		if i, ok := index[split.ExpenseID]; ok {
			expenses[i].Splits = append(expenses[i].Splits, split)
		}
	}
	if err := splitRows.Err(); err != nil {
		return nil, storeErr(err, "iterate splits")
	}

	return expenses, nil
}
