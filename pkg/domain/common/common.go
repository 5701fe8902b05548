// Package common defines the closed set of failure kinds shared by the
// ledger core. Callers classify failures by kind, not by concrete type:
// every failure the core reports is an *Error carrying a Kind and a stable
// reason string, and errors.Is matches two of them when their kinds agree.
package common

// Kind classifies a ledger failure.
type Kind int

const (
	// KindNullUserID means a user identifier was missing where required.
	KindNullUserID Kind = iota + 1
	// KindUserNotFound means the identifier was well-formed but no account matched.
	KindUserNotFound
	// KindInvalidAmount means the amount was absent, zero where disallowed,
	// negative, or carried sub-cent precision.
	KindInvalidAmount
	// KindInsufficientFunds means a withdrawal or transfer exceeded the balance.
	KindInsufficientFunds
	// KindInvalidTransfer means the payer equals the payee or the transfer
	// legs are structurally inconsistent.
	KindInvalidTransfer
)

// String returns the name of the failure kind.
func (k Kind) String() string {
	switch k {
	case KindNullUserID:
		return "null user id"
	case KindUserNotFound:
		return "user not found"
	case KindInvalidAmount:
		return "invalid amount"
	case KindInsufficientFunds:
		return "insufficient funds"
	case KindInvalidTransfer:
		return "invalid transfer"
	}
	return "unknown"
}

// Error is a classified ledger failure. Reason is a fixed string the boundary
// layer can map deterministically to a transport-level status.
type Error struct {
	Kind   Kind
	Reason string
}

// E builds a classified failure with the given kind and reason.
func E(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

// Error returns the reason string.
func (e *Error) Error() string {
	return e.Reason
}

// Is reports whether target is an *Error of the same kind, so
// errors.Is(err, common.ErrUserNotFound) matches regardless of reason.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel values for errors.Is matching by kind. Each carries the default
// reason for its kind; specific failure paths substitute their own reason
// via E while keeping the kind.
var (
	ErrNullUserID        = E(KindNullUserID, "user id is null")
	ErrUserNotFound      = E(KindUserNotFound, "user not found")
	ErrInvalidAmount     = E(KindInvalidAmount, "invalid amount")
	ErrInsufficientFunds = E(KindInsufficientFunds, "insufficient balance")
	ErrInvalidTransfer   = E(KindInvalidTransfer, "invalid transfer")
)
