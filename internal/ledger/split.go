// Package ledger implements the accounting math for Split Happens:
// equal expense splitting in exact minor units and pairwise balance netting.
// All functions are pure; persistence lives in the service/storage layers.
package ledger

import (
	"sort"

	"github.com/splithappens/splithappens/internal/apperr"
	"github.com/splithappens/splithappens/internal/money"
)

// Share is one participant's computed share of an expense.
type Share struct {
	MemberID string
	Amount   money.Amount
}

// SplitEqually divides total among the participants in exact minor units.
//
// Each participant gets base = total/n; the remaining total mod n minor
// units go one each to the first participants in ascending member-id order,
// so the shares always sum to total exactly and the assignment is
// reproducible for the same inputs.
//
// Returns shares in ascending member-id order.
func SplitEqually(total money.Amount, participantIDs []string) ([]Share, error) {
	if !total.IsPositive() {
		return nil, apperr.Validationf("amount must be positive, got %s", total)
	}
	if len(participantIDs) == 0 {
		return nil, apperr.Validationf("at least one participant is required")
	}

	ids := make([]string, len(participantIDs))
	copy(ids, participantIDs)
	sort.Strings(ids)
	for i := 1; i < len(ids); i++ {
		if ids[i] == ids[i-1] {
			return nil, apperr.Validationf("duplicate participant %q", ids[i])
		}
	}

	n := money.Amount(len(ids))
	base := total / n
	remainder := total - base*n

	shares := make([]Share, len(ids))
	for i, id := range ids {
		amount := base
		if money.Amount(i) < remainder {
			amount++
		}
		shares[i] = Share{MemberID: id, Amount: amount}
	}
	return shares, nil
}
