package apperror

import (
	"errors"
	"net/http"
	"strings"
)

const (
	msgCancelled    = "Transaction was cancelled. Please try again when ready."
	msgGas          = "Transaction gas limit too high. Please try a smaller amount or contact support."
	msgInsufficient = "Insufficient balance. Please ensure you have enough ETH for the transaction and gas fees."
	msgWalletError  = "An error occurred. Please check your wallet connection and try again."
)

// ErrWalletInternal marks an opaque wallet-side "internal error".
func ErrWalletInternal(err error) *AppError {
	return Wrap(KindUnknown, "WAL_003", "Wallet internal error", http.StatusBadRequest, err)
}

// ClassifyMessage maps a raw error string from an external source (JSON-RPC
// node, browser wallet) to a typed error. Unmatched text becomes an
// UnknownError carrying the text verbatim.
//
// Insufficient funds is checked before gas: node messages read
// "insufficient funds for gas * price + value".
func ClassifyMessage(raw string) *AppError {
	cause := errors.New(raw)
	lower := strings.ToLower(raw)

	switch {
	case strings.Contains(lower, "user rejected"), strings.Contains(lower, "denied"):
		return Wrap(KindUserRejected, "WAL_001", "User rejected the request", http.StatusBadRequest, cause)
	case strings.Contains(lower, "insufficient funds"), strings.Contains(lower, "insufficient balance"):
		return Wrap(KindInsufficientFunds, "FUND_001", "Insufficient balance for transaction", http.StatusBadRequest, cause)
	case strings.Contains(lower, "gas"):
		return ErrGas(cause)
	case strings.Contains(lower, "connection refused"),
		strings.Contains(lower, "no such host"),
		strings.Contains(lower, "i/o timeout"),
		strings.Contains(lower, "network"):
		return ErrNodeUnreachable(cause)
	case strings.Contains(lower, "internal error"):
		return ErrWalletInternal(cause)
	}
	return Unknown(cause)
}

// Humanize returns the user-facing status text for err. Known kinds are
// rewritten; anything else is shown as-is.
func Humanize(err error) string {
	if err == nil {
		return ""
	}
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return err.Error()
	}

	switch appErr.Kind {
	case KindUserRejected:
		return msgCancelled
	case KindInsufficientFunds:
		return msgInsufficient
	}

	switch appErr.Code {
	case "WAL_002":
		return msgGas
	case "WAL_003":
		return msgWalletError
	}
	return appErr.Message
}
