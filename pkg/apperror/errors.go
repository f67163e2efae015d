package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error at the point it is raised so callers can switch
// on it instead of re-parsing messages.
type Kind string

const (
	KindValidation        Kind = "ValidationError"
	KindConfiguration     Kind = "ConfigurationError"
	KindNetwork           Kind = "NetworkError"
	KindInsufficientFunds Kind = "InsufficientFundsError"
	KindUserRejected      Kind = "UserRejectedError"
	KindUnknown           Kind = "UnknownError"

	KindNotFound    Kind = "NotFoundError"
	KindConflict    Kind = "ConflictError"
	KindForbidden   Kind = "ForbiddenError"
	KindRateLimited Kind = "RateLimitError"
	KindInternal    Kind = "InternalError"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(kind Kind, code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(kind Kind, code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Kind:       kind,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// KindOf returns the kind of err, or KindUnknown when err carries none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// ---- Validation (VAL) ----

func ErrInvalidAmount() *AppError {
	return New(KindValidation, "VAL_001", "Invalid amount", http.StatusBadRequest)
}

// Validation returns a VAL_002 bad-request error with the given message.
func Validation(message string) *AppError {
	return New(KindValidation, "VAL_002", message, http.StatusBadRequest)
}

func ErrMissingFields(fields string) *AppError {
	return Validation("Missing required fields: " + fields)
}

func ErrInvalidAddress(field, value string) *AppError {
	return New(KindValidation, "VAL_003", fmt.Sprintf("Invalid %s address: %q", field, value), http.StatusBadRequest)
}

// ---- Configuration (CFG) ----

func ErrSigningKeyMissing() *AppError {
	return New(KindConfiguration, "CFG_001",
		"Private key required for relayed transactions. Configure PRIVATE_KEY in the environment.",
		http.StatusInternalServerError)
}

func ErrNotConfigured(message string) *AppError {
	return New(KindConfiguration, "CFG_002", message, http.StatusInternalServerError)
}

// ---- Network (NET) ----

func ErrWrongChain(expected uint64, got string) *AppError {
	return New(KindNetwork, "NET_001",
		fmt.Sprintf("Invalid network. Expected chain %d, got %s", expected, got),
		http.StatusInternalServerError)
}

func ErrNodeUnreachable(err error) *AppError {
	return Wrap(KindNetwork, "NET_002", "Network error", http.StatusInternalServerError, err)
}

func ErrTransactionReverted(txHash string) *AppError {
	return New(KindUnknown, "NET_003", fmt.Sprintf("Transaction %s reverted", txHash), http.StatusInternalServerError)
}

// ---- Funds and wallet (FUND, WAL) ----

func ErrInsufficientFunds() *AppError {
	return New(KindInsufficientFunds, "FUND_001", "Insufficient balance for transaction", http.StatusBadRequest)
}

func ErrUserRejected() *AppError {
	return New(KindUserRejected, "WAL_001", "User rejected the request", http.StatusBadRequest)
}

func ErrGas(err error) *AppError {
	return Wrap(KindUnknown, "WAL_002", "Gas estimation failed", http.StatusBadRequest, err)
}

// ---- Encryption (ENC, DEC) ----

func ErrEncryptionFailure(err error) *AppError {
	return Wrap(KindInternal, "ENC_001", "Encryption failed", http.StatusInternalServerError, err)
}

func ErrBindingMismatch() *AppError {
	return New(KindValidation, "ENC_002", "Ciphertext is not bound to this contract and recipient", http.StatusBadRequest)
}

func ErrDecryptForbidden(reason string) *AppError {
	return New(KindForbidden, "DEC_001", "Decryption not authorized: "+reason, http.StatusForbidden)
}

// ---- Tips (TIP) ----

func ErrAlreadyRelayed() *AppError {
	return New(KindConflict, "TIP_001", "Ciphertext has already been relayed", http.StatusConflict)
}

func ErrTipInFlight() *AppError {
	return New(KindConflict, "TIP_002", "A tip to this KOL is already in progress", http.StatusConflict)
}

func ErrInvalidTransition(from, to string) *AppError {
	return New(KindConflict, "TIP_003", fmt.Sprintf("Tip cannot move from %s to %s", from, to), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(KindNotFound, "TIP_004", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(KindRateLimited, "RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// Unknown wraps an unclassified error; its message is surfaced as-is.
func Unknown(err error) *AppError {
	return Wrap(KindUnknown, "SYS_000", err.Error(), http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(KindInternal, "SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

func ErrStorage(err error) *AppError {
	return Wrap(KindInternal, "SYS_002", "Storage error", http.StatusInternalServerError, err)
}
