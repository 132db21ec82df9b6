package domain

import (
	"errors"

	"github.com/go-petr/pet-loans/pkg/errorspkg"
)

var (
	// ErrInvalidReference indicates a missing correlation reference.
	ErrInvalidReference = errors.New("reference is required")
	// ErrDuplicateReference indicates that the reference was already used for a different request.
	ErrDuplicateReference = errors.New("reference already used for a different request")
)

// Kind classifies errors into the failure taxonomy exposed to callers.
type Kind string

// Failure kinds.
const (
	KindNone                 Kind = ""
	KindInvalid              Kind = "Invalid"
	KindNotFound             Kind = "NotFound"
	KindInvalidState         Kind = "InvalidState"
	KindInsufficientFunds    Kind = "InsufficientFunds"
	KindAmountExceedsBalance Kind = "AmountExceedsBalance"
	KindCapacityExceeded     Kind = "CapacityExceeded"
	KindBelowMinimum         Kind = "BelowMinimum"
	KindForbidden            Kind = "Forbidden"
	KindUnavailable          Kind = "Unavailable"
	KindConflict             Kind = "Conflict"
	KindInternal             Kind = "Internal"
)

var kinds = []struct {
	kind Kind
	errs []error
}{
	{KindInvalid, []error{ErrInvalidAmount, ErrInvalidDuration, ErrInvalidRate, ErrInvalidReference, ErrInvalidLoanStatus}},
	{KindNotFound, []error{ErrAccountNotFound, ErrLoanNotFound, ErrPaymentNotFound}},
	{KindInvalidState, []error{ErrInvalidLoanState, ErrAccountInactive, ErrNotOverdue}},
	{KindInsufficientFunds, []error{ErrInsufficientBalance}},
	{KindAmountExceedsBalance, []error{ErrAmountExceedsBalance}},
	{KindCapacityExceeded, []error{ErrCapacityExceeded}},
	{KindBelowMinimum, []error{ErrBelowMinimum, ErrBalanceBelowMinimum}},
	{KindForbidden, []error{ErrAccountOwnerMismatch, ErrLoanOwnerMismatch}},
	{KindUnavailable, []error{errorspkg.ErrUnavailable}},
	{KindConflict, []error{errorspkg.ErrConflict, ErrDuplicateReference, ErrOwnerAlreadyExists}},
}

// KindOf returns the failure kind of err. Unknown errors are Internal.
func KindOf(err error) Kind {
	if err == nil {
		return KindNone
	}

	for _, k := range kinds {
		for _, target := range k.errs {
			if errors.Is(err, target) {
				return k.kind
			}
		}
	}

	return KindInternal
}

// IsRetryable reports whether the caller may retry the same request verbatim.
func IsRetryable(err error) bool {
	switch KindOf(err) {
	case KindUnavailable, KindConflict:
		return !errors.Is(err, ErrDuplicateReference) && !errors.Is(err, ErrOwnerAlreadyExists)
	default:
		return false
	}
}

// Roles supplied by the identity collaborator.
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)
