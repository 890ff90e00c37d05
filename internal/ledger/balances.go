package ledger

import (
	"sort"

	"github.com/splithappens/splithappens/internal/models"
	"github.com/splithappens/splithappens/internal/money"
)

// Debt is a direction-collapsed net amount one member owes another.
type Debt struct {
	DebtorID   string       `json:"debtor_id"`
	CreditorID string       `json:"creditor_id"`
	Amount     money.Amount `json:"amount"`
}

// NetBalances folds a group's full expense and settlement history into
// minimal pairwise debts.
//
// For every split whose member is not the expense's payer, the split amount
// accrues as owed from the member to the payer. A settlement counts as a
// payment from debtor to creditor and accrues in the opposite direction.
// Opposing pairs are then netted so the result never contains both (A,B)
// and (B,A); zero pairs are dropped. Self-loops cannot occur: a payer's own
// split never accrues.
//
// The result is sorted by (debtor, creditor) so repeated calls over the
// same history are identical.
func NetBalances(expenses []models.Expense, settlements []models.Settlement) []Debt {
	// owed[debtor][creditor] = gross amount owed
	owed := make(map[string]map[string]money.Amount)
	accrue := func(debtor, creditor string, amount money.Amount) {
		if amount == 0 || debtor == creditor {
			return
		}
		m, ok := owed[debtor]
		if !ok {
			m = make(map[string]money.Amount)
			owed[debtor] = m
		}
		m[creditor] += amount
	}

	for _, exp := range expenses {
		for _, split := range exp.Splits {
			if split.MemberID != exp.PaidBy {
				accrue(split.MemberID, exp.PaidBy, split.Amount)
			}
		}
	}

	// A payment from debtor to creditor is credit in the reverse direction;
	// netting below folds it in, flipping the pair if the debtor overpaid.
	for _, s := range settlements {
		accrue(s.ToID, s.FromID, s.Amount)
	}

	// Net opposing directions per unordered pair.
	type pair struct{ low, high string }
	pairs := make(map[pair]struct{})
	for debtor, creditors := range owed {
		for creditor := range creditors {
			p := pair{debtor, creditor}
			if p.low > p.high {
				p.low, p.high = p.high, p.low
			}
			pairs[p] = struct{}{}
		}
	}

	var debts []Debt
	for p := range pairs {
		net := owed[p.low][p.high] - owed[p.high][p.low]
		switch {
		case net > 0:
			debts = append(debts, Debt{DebtorID: p.low, CreditorID: p.high, Amount: net})
		case net < 0:
			debts = append(debts, Debt{DebtorID: p.high, CreditorID: p.low, Amount: -net})
		}
	}

	sort.Slice(debts, func(i, j int) bool {
		if debts[i].DebtorID != debts[j].DebtorID {
			return debts[i].DebtorID < debts[j].DebtorID
		}
		return debts[i].CreditorID < debts[j].CreditorID
	})
	return debts
}
