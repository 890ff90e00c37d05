package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/ledger"
	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/money"
	"github.com/splithappens/splithappens/internal/service"
)

type recordExpenseRequest struct {
	GroupID     string   `json:"group_id"`
	Description string   `json:"description"`
	Amount      int64    `json:"amount"` // minor units
	PaidBy      string   `json:"paid_by"`
	SplitWith   []string `json:"split_with"`
	Date        string   `json:"date"`
	Notes       string   `json:"notes"`
}

func (s *Server) handleRecordExpense(c *fiber.Ctx) error {
	var req recordExpenseRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	actor := memberID(c)

	// Only group members may record expenses against a group.
	ok, err := s.Groups.IsMember(c.Context(), req.GroupID, actor)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.Membershipf("not a member of this group")
	}

	paidBy := req.PaidBy
	if paidBy == "" {
		paidBy = actor
	}

	expense, err := s.Ledger.RecordExpense(c.Context(), service.RecordExpenseRequest{
		GroupID:        req.GroupID,
		PaidBy:         paidBy,
		Amount:         money.Amount(req.Amount),
		ParticipantIDs: req.SplitWith,
		Description:    req.Description,
		Date:           req.Date,
		Notes:          req.Notes,
		ActorID:        actor,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(expense)
}

func (s *Server) handleListExpenses(c *fiber.Ctx) error {
	expenses, err := s.Ledger.ListExpenses(c.Context(), c.Params("group_id"))
	if err != nil {
		return err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}
	return c.JSON(expenses)
}

func (s *Server) handleNetBalances(c *fiber.Ctx) error {
	debts, err := s.Ledger.NetBalances(c.Context(), c.Params("group_id"))
	if err != nil {
		return err
	}
	if debts == nil {
		debts = []ledger.Debt{}
	}
	return c.JSON(debts)
}

type recordSettlementRequest struct {
	GroupID string `json:"group_id"`
	FromID  string `json:"from_id"`
	ToID    string `json:"to_id"`
	Amount  int64  `json:"amount"` // minor units
	Note    string `json:"note"`
}

func (s *Server) handleRecordSettlement(c *fiber.Ctx) error {
	var req recordSettlementRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.Validationf("invalid request body")
	}

	actor := memberID(c)
	from := req.FromID
	if from == "" {
		from = actor
	}

	settlement, err := s.Ledger.RecordSettlement(c.Context(), service.RecordSettlementRequest{
		GroupID: req.GroupID,
		FromID:  from,
		ToID:    req.ToID,
		Amount:  money.Amount(req.Amount),
		Note:    req.Note,
		ActorID: actor,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(settlement)
}

func (s *Server) handleListSettlements(c *fiber.Ctx) error {
	settlements, err := s.Ledger.ListSettlements(c.Context(), c.Params("group_id"))
	if err != nil {
		return err
	}
	if settlements == nil {
		settlements = []models.Settlement{}
	}
	return c.JSON(settlements)
}
