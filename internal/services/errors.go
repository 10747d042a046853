package services

import "errors"

// ErrorKind classifies ledger rejections by how a caller can recover from them.
type ErrorKind uint8

const (
	KindValidation ErrorKind = iota + 1
	KindStateConflict
	KindAuthorization
	KindResource
	KindTemporal
	KindSettlement
)

// String returns the taxonomy name of the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "ValidationError"
	case KindStateConflict:
		return "StateConflictError"
	case KindAuthorization:
		return "AuthorizationError"
	case KindResource:
		return "ResourceError"
	case KindTemporal:
		return "TemporalError"
	case KindSettlement:
		return "SettlementFailure"
	default:
		return "UnknownError"
	}
}

// LedgerError is a rejection reason returned by a ledger operation.
// Values are compared by identity, so callers match them with errors.Is.
type LedgerError struct {
	Kind ErrorKind
	Code string
}

func (e *LedgerError) Error() string { return "ledger: " + e.Code }

func newLedgerError(kind ErrorKind, code string) *LedgerError {
	return &LedgerError{Kind: kind, Code: code}
}

var (
	ErrInvalidAmount      = newLedgerError(KindValidation, "InvalidAmount")
	ErrAmountBelowMinimum = newLedgerError(KindValidation, "AmountBelowMinimum")
	ErrInvalidDuration    = newLedgerError(KindValidation, "InvalidDuration")
	ErrInvalidAddress     = newLedgerError(KindValidation, "InvalidAddress")
	ErrInvalidParameter   = newLedgerError(KindValidation, "InvalidParameter")
	ErrCannotVouchSelf    = newLedgerError(KindValidation, "CannotVouchSelf")

	ErrActiveLoanExists  = newLedgerError(KindStateConflict, "ActiveLoanExists")
	ErrNoActiveLoan      = newLedgerError(KindStateConflict, "NoActiveLoan")
	ErrLoanNotActive     = newLedgerError(KindStateConflict, "LoanNotActive")
	ErrAlreadyVouched    = newLedgerError(KindStateConflict, "AlreadyVouched")
	ErrDAOAlreadyEnabled = newLedgerError(KindStateConflict, "DAOAlreadyEnabled")
	ErrPaused            = newLedgerError(KindStateConflict, "Paused")
	ErrNotPaused         = newLedgerError(KindStateConflict, "NotPaused")

	ErrUnauthorized        = newLedgerError(KindAuthorization, "Unauthorized")
	ErrInsufficientTrust   = newLedgerError(KindAuthorization, "InsufficientTrust")
	ErrInsufficientHistory = newLedgerError(KindAuthorization, "InsufficientHistory")

	ErrInsufficientBalance   = newLedgerError(KindResource, "InsufficientBalance")
	ErrInsufficientLiquidity = newLedgerError(KindResource, "InsufficientLiquidity")
	ErrNoInterestAvailable   = newLedgerError(KindResource, "NoInterestAvailable")
	ErrExceedsLimit          = newLedgerError(KindResource, "ExceedsLimit")

	ErrCooldownActive = newLedgerError(KindTemporal, "CooldownActive")
	ErrNotOverdue     = newLedgerError(KindTemporal, "NotOverdue")

	ErrSettlementFailed = newLedgerError(KindSettlement, "SettlementFailed")
)

// KindOf returns the kind of the first LedgerError in err's chain, or 0.
func KindOf(err error) ErrorKind {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Kind
	}
	return 0
}

// CodeOf returns the reason code of the first LedgerError in err's chain.
func CodeOf(err error) string {
	var le *LedgerError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

// settlementError wraps a substrate failure so that both the ledger reason and the
// underlying cause stay reachable through errors.Is.
type settlementError struct {
	cause error
}

func (e *settlementError) Error() string {
	return ErrSettlementFailed.Error() + ": " + e.cause.Error()
}

func (e *settlementError) Unwrap() []error {
	return []error{ErrSettlementFailed, e.cause}
}
