// Package apperr defines the error taxonomy shared by the core services.
//
// Every failure the core returns carries a Kind; callers (including the HTTP
// layer) branch on the kind, never on message text. Errors are plain wrapped
// errors otherwise, so errors.Is/As and %w chains work as usual.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	// KindValidation indicates malformed input (bad amount, empty name, ...).
	KindValidation Kind = iota + 1
	// KindMembership indicates the actor or a referenced member does not
	// belong to the group in question.
	KindMembership
	// KindNotFound indicates a referenced group/expense/member is absent.
	KindNotFound
	// KindConflict indicates a duplicate membership or friend edge.
	KindConflict
	// KindUnavailable indicates the store or identity provider timed out
	// or is unreachable.
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindMembership:
		return "membership"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Error is a kinded error. Construct via the helper functions below.
type Error struct {
	kind Kind
	msg  string
	err  error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.err }

// Kind returns the error's classification.
func (e *Error) Kind() Kind { return e.kind }

// Validationf returns a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return &Error{kind: KindValidation, msg: fmt.Sprintf(format, args...)}
}

// Membershipf returns a KindMembership error.
func Membershipf(format string, args ...any) *Error {
	return &Error{kind: KindMembership, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{kind: KindNotFound, msg: fmt.Sprintf(format, args...)}
}

// Conflictf returns a KindConflict error.
func Conflictf(format string, args ...any) *Error {
	return &Error{kind: KindConflict, msg: fmt.Sprintf(format, args...)}
}

// Unavailable wraps a store/provider failure as KindUnavailable.
func Unavailable(err error, msg string) *Error {
	return &Error{kind: KindUnavailable, msg: msg, err: err}
}

// KindOf returns the kind of err, or 0 if err carries no kind.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}
	return 0
}

// IsValidation reports whether err is a KindValidation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// IsMembership reports whether err is a KindMembership error.
func IsMembership(err error) bool { return KindOf(err) == KindMembership }

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsConflict reports whether err is a KindConflict error.
func IsConflict(err error) bool { return KindOf(err) == KindConflict }

// IsUnavailable reports whether err is a KindUnavailable error.
func IsUnavailable(err error) bool { return KindOf(err) == KindUnavailable }
