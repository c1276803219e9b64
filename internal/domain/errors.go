// Package domain provides definitions of all entities and errors of the savings core.
package domain

import "errors"

// Error kinds. Every specific error below unwraps to exactly one kind, so callers can
// branch with errors.Is(err, domain.ErrRateLimit) without enumerating every sentinel.
var (
	ErrValidation        = errors.New("validation error")
	ErrAuthorization     = errors.New("authorization error")
	ErrState             = errors.New("state error")
	ErrRateLimit         = errors.New("rate limit error")
	ErrInsufficientFunds = errors.New("insufficient funds error")
	ErrExternal          = errors.New("external failure")
	ErrPaused            = errors.New("paused")
)

// Error is a specific domain error belonging to one of the kinds above.
type Error struct {
	kind error
	msg  string
}

// NewError returns a specific error of the given kind.
func NewError(kind error, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.msg
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.kind
}

// Kind returns the kind sentinel of err, or nil if err is not a domain error.
func Kind(err error) error {
	for _, kind := range []error{
		ErrPaused,
		ErrValidation,
		ErrAuthorization,
		ErrState,
		ErrRateLimit,
		ErrInsufficientFunds,
		ErrExternal,
	} {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}

var (
	// ErrInvalidAmount indicates an amount that is zero, negative or below the dust guard.
	ErrInvalidAmount = NewError(ErrValidation, "invalid amount")
	// ErrInvalidGoal indicates a weekly goal that is not positive.
	ErrInvalidGoal = NewError(ErrValidation, "weekly goal must be positive")
	// ErrInvalidSafetyBuffer indicates a negative safety buffer.
	ErrInvalidSafetyBuffer = NewError(ErrValidation, "safety buffer must not be negative")
	// ErrInvalidTrustMode indicates an unknown trust mode.
	ErrInvalidTrustMode = NewError(ErrValidation, "invalid trust mode")
	// ErrAmountOutOfBounds indicates an automated save amount outside (0, max].
	ErrAmountOutOfBounds = NewError(ErrValidation, "amount out of bounds")
	// ErrZeroAmount indicates a zero amount or zero share units.
	ErrZeroAmount = NewError(ErrValidation, "zero amount")
	// ErrSlippageTooHigh indicates a slippage tolerance above the hard ceiling.
	ErrSlippageTooHigh = NewError(ErrValidation, "slippage tolerance too high")
	// ErrPoolNotConfigured indicates that no pool strategy is bound to the ledger.
	ErrPoolNotConfigured = NewError(ErrValidation, "pool strategy is not configured")
	// ErrInvalidIdentity indicates an empty identity.
	ErrInvalidIdentity = NewError(ErrValidation, "invalid identity")

	// ErrUnauthorized indicates that the caller may not perform the operation.
	ErrUnauthorized = NewError(ErrAuthorization, "unauthorized caller")

	// ErrAccountAlreadyExists indicates that the identity already owns an account.
	ErrAccountAlreadyExists = NewError(ErrState, "account already exists")
	// ErrAccountNotActive indicates that the account is deactivated.
	ErrAccountNotActive = NewError(ErrState, "account is not active")
	// ErrAccountNotFound indicates that the identity owns no account.
	ErrAccountNotFound = NewError(ErrState, "account not found")
	// ErrOwnerNotFound indicates that the account owner is not a registered user.
	ErrOwnerNotFound = NewError(ErrState, "owner not found")
	// ErrPooledFundsOutstanding indicates that the account still has funds routed into the pool.
	ErrPooledFundsOutstanding = NewError(ErrState, "pooled funds must be withdrawn first")
	// ErrConcurrentUpdate indicates that the account changed after it was read.
	ErrConcurrentUpdate = NewError(ErrState, "account was modified concurrently")

	// ErrRateLimitNotMet indicates that the minimum interval between automated saves has not passed.
	ErrRateLimitNotMet = NewError(ErrRateLimit, "minimum interval between automated saves not met")

	// ErrInsufficientBalance indicates that the account balance does not cover the withdrawal.
	ErrInsufficientBalance = NewError(ErrInsufficientFunds, "insufficient balance")
	// ErrInsufficientShares indicates that the owner holds fewer share units than requested.
	ErrInsufficientShares = NewError(ErrInsufficientFunds, "insufficient share units")

	// ErrExternalFailure indicates that a settlement or pool call failed.
	ErrExternalFailure = NewError(ErrExternal, "external call failed")
	// ErrBookedInCustody indicates that an external call failed after the operation was
	// committed. The state did change: the funds are booked as held by the ledger.
	ErrBookedInCustody = NewError(ErrExternal, "external call failed after the operation was booked, funds are held by the ledger")

	// ErrSystemPaused indicates that mutating operations are globally paused.
	ErrSystemPaused = NewError(ErrPaused, "operations are paused")
)
