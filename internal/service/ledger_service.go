package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/ledger"
	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/money"
	"github.com/splithappens/splithappens/internal/storage"
)

// LedgerService records expenses and settlements and derives balances.
type LedgerService struct {
	store   storage.Store
	timeout time.Duration
}

// NewLedgerService creates a LedgerService with the given storage backend.
// timeout bounds each store call; zero disables the bound.
func NewLedgerService(store storage.Store, timeout time.Duration) *LedgerService {
	return &LedgerService{store: store, timeout: timeout}
}

// RecordExpenseRequest is the validated input for RecordExpense.
type RecordExpenseRequest struct {
	GroupID        string
	PaidBy         string
	Amount         money.Amount
	ParticipantIDs []string
	Description    string
	Date           string
	Notes          string
	// ActorID is the authenticated member recording the expense.
	ActorID string
}

// RecordExpense validates the request, computes equal splits in exact
// minor units, and persists the expense with its splits atomically.
// On any failure no partial state is persisted.
func (s *LedgerService) RecordExpense(ctx context.Context, req RecordExpenseRequest) (*models.Expense, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	// Split validation first: bad amounts and bad participant sets are
	// rejected before any store round trip.
	shares, err := ledger.SplitEqually(req.Amount, req.ParticipantIDs)
	if err != nil {
		return nil, err
	}

	if _, err := s.store.GetGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}

	// Payer and every participant must be group members at recording time.
	if err := s.requireMember(ctx, req.GroupID, req.PaidBy); err != nil {
		return nil, err
	}
	for _, share := range shares {
		if share.MemberID == req.PaidBy {
			continue
		}
		if err := s.requireMember(ctx, req.GroupID, share.MemberID); err != nil {
			return nil, err
		}
	}

	expense := &models.Expense{
		GroupID:     req.GroupID,
		Description: req.Description,
		Amount:      req.Amount,
		PaidBy:      req.PaidBy,
		Date:        req.Date,
		Notes:       req.Notes,
		CreatedBy:   req.ActorID,
	}
	if expense.Description == "" {
		expense.Description = "Untitled expense"
	}
	if expense.Date == "" {
		expense.Date = time.Now().Format("2006-01-02")
	}
	for _, share := range shares {
		expense.Splits = append(expense.Splits, models.Split{
			MemberID: share.MemberID,
			Amount:   share.Amount,
		})
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("RecordExpense failed", "group_id", req.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Expense recorded",
		"expense_id", expense.ID,
		"group_id", expense.GroupID,
		"amount", expense.Amount.String(),
		"participants", len(expense.Splits),
	)
	return expense, nil
}

func (s *LedgerService) requireMember(ctx context.Context, groupID, memberID string) error {
	ok, err := s.store.IsMember(ctx, groupID, memberID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Membershipf("%s is not a member of group %s", memberID, groupID)
	}
	return nil
}

// ListExpenses returns a group's expenses with splits, newest first.
func (s *LedgerService) ListExpenses(ctx context.Context, groupID string) ([]models.Expense, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListExpenses(ctx, groupID)
}

// NetBalances folds the group's full expense and settlement history into
// minimal pairwise debts. A group with no history yields an empty slice.
func (s *LedgerService) NetBalances(ctx context.Context, groupID string) ([]ledger.Debt, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}

	expenses, err := s.store.ListExpenses(ctx, groupID)
	if err != nil {
		return nil, err
	}
	settlements, err := s.store.ListSettlements(ctx, groupID)
	if err != nil {
		return nil, err
	}

	return ledger.NetBalances(expenses, settlements), nil
}

// RecordSettlementRequest is the validated input for RecordSettlement.
type RecordSettlementRequest struct {
	GroupID string
	FromID  string
	ToID    string
	Amount  money.Amount
	Note    string
	ActorID string
}

// RecordSettlement records a payment between two group members.
func (s *LedgerService) RecordSettlement(ctx context.Context, req RecordSettlementRequest) (*models.Settlement, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if !req.Amount.IsPositive() {
		return nil, apperr.Validationf("amount must be positive, got %s", req.Amount)
	}
	if req.FromID == req.ToID {
		return nil, apperr.Validationf("cannot settle with yourself")
	}

	if _, err := s.store.GetGroup(ctx, req.GroupID); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, req.GroupID, req.FromID); err != nil {
		return nil, err
	}
	if err := s.requireMember(ctx, req.GroupID, req.ToID); err != nil {
		return nil, err
	}

	settlement := &models.Settlement{
		GroupID:   req.GroupID,
		FromID:    req.FromID,
		ToID:      req.ToID,
		Amount:    req.Amount,
		Note:      req.Note,
		CreatedBy: req.ActorID,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("RecordSettlement failed", "group_id", req.GroupID, "error", err)
		return nil, err
	}

	slog.Info("Settlement recorded",
		"settlement_id", settlement.ID,
		"group_id", settlement.GroupID,
		"amount", settlement.Amount.String(),
	)
	return settlement, nil
}

// ListSettlements returns a group's settlements, newest first.
func (s *LedgerService) ListSettlements(ctx context.Context, groupID string) ([]models.Settlement, error) {
	ctx, cancel := storeTimeout(ctx, s.timeout)
	defer cancel()

	if _, err := s.store.GetGroup(ctx, groupID); err != nil {
		return nil, err
	}
	return s.store.ListSettlements(ctx, groupID)
}
