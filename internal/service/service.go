// Package service implements the in-process API of Split Happens: the
// ledger (expenses, splits, balances), groups, friends, and authentication.
// The HTTP layer is a thin translation on top of these types; all domain
// rules live here or below.
package service

import (
	"context"
	"time"
)

// storeTimeout bounds a single store call. A zero duration disables the
// bound (used by tests that drive cancellation themselves).
func storeTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
