package dto

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"private-tips/internal/core/domain"
)

// Amount accepts a JSON number or a numeric string, as wallets and forms
// send either.
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*a = 0
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unq)
		if s == "" {
			*a = 0
			return nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Amount(v)
	return nil
}

// EncryptTipRequest is the request body for POST /api/encrypt-tip.
// Presence and format are checked by the workflow so the messages match.
type EncryptTipRequest struct {
	Amount Amount `json:"amount"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// EncryptTipResponse is the response body for POST /api/encrypt-tip.
type EncryptTipResponse struct {
	Ciphertext   string `json:"ciphertext"`
	EncryptionID string `json:"encryptionId"`
}

// SetBalanceRequest is the request body for POST /api/kol-balance.
type SetBalanceRequest struct {
	KolID            string          `json:"kolId" binding:"omitempty,max=64,safe_id"`
	EncryptedBalance json.RawMessage `json:"encryptedBalance"`
}

// BalanceResponse is the response body for GET /api/kol-balance.
type BalanceResponse struct {
	EncryptedBalance json.RawMessage `json:"encryptedBalance"`
	LastUpdated      string          `json:"lastUpdated"`
}

// RelayTxRequest is the request body for POST /api/relay-tx.
type RelayTxRequest struct {
	Ciphertext string `json:"ciphertext" binding:"omitempty,hex_bytes"`
	ToAddress  string `json:"toAddress"`
	RequestID  string `json:"requestId" binding:"omitempty,max=128,safe_id"`
}

// RelayTxResponse is the response body for POST /api/relay-tx. Block number
// and gas are decimal strings.
type RelayTxResponse struct {
	TxHash       string `json:"txHash"`
	BlockNumber  string `json:"blockNumber,omitempty"`
	GasUsed      string `json:"gasUsed,omitempty"`
	Network      string `json:"network"`
	ExplorerURL  string `json:"explorerUrl"`
	EtherscanURL string `json:"etherscanUrl"`
	Status       string `json:"status"`
	Message      string `json:"message"`
}

// SendTipRequest is the request body for POST /api/tips.
type SendTipRequest struct {
	KolID  string `json:"kolId" binding:"omitempty,max=64,safe_id"`
	Amount Amount `json:"amount"`
	From   string `json:"from"`
}

// ConfirmTipRequest is the request body for POST /api/tips/:encryptionId/confirm.
type ConfirmTipRequest struct {
	TxHash string `json:"txHash" binding:"required,hex_bytes"`
}

// FailTipRequest is the request body for POST /api/tips/:encryptionId/fail.
type FailTipRequest struct {
	Error string `json:"error" binding:"required,max=2048"`
}

// TipResponse is the view of a tip record.
type TipResponse struct {
	EncryptionID    string                   `json:"encryptionId"`
	KolID           string                   `json:"kolId,omitempty"`
	From            string                   `json:"from"`
	To              string                   `json:"to"`
	Strategy        string                   `json:"strategy"`
	State           string                   `json:"state"`
	Ciphertext      string                   `json:"ciphertext,omitempty"`
	ValueWei        string                   `json:"valueWei,omitempty"`
	ContractAddress string                   `json:"contractAddress,omitempty"`
	TxHash          string                   `json:"txHash,omitempty"`
	BlockNumber     string                   `json:"blockNumber,omitempty"`
	GasUsed         string                   `json:"gasUsed,omitempty"`
	ExplorerURL     string                   `json:"explorerUrl,omitempty"`
	Message         string                   `json:"message"`
	ErrorKind       string                   `json:"errorKind,omitempty"`
	ErrorCode       string                   `json:"error_code,omitempty"`
	NoticeExpiresAt *string                  `json:"noticeExpiresAt,omitempty"`
	Transitions     []domain.StateTransition `json:"transitions"`
	CreatedAt       string                   `json:"createdAt"`
	UpdatedAt       string                   `json:"updatedAt"`
}

// DecryptRequest is the request body for POST /api/decrypt.
type DecryptRequest struct {
	Handle            string   `json:"handle" binding:"omitempty,hex_bytes"`
	ContractAddress   string   `json:"contractAddress"`
	UserAddress       string   `json:"userAddress"`
	PublicKey         string   `json:"publicKey"`
	ContractAddresses []string `json:"contractAddresses" binding:"max=16"`
	StartTimestamp    int64    `json:"startTimestamp"`
	DurationDays      int64    `json:"durationDays"`
	Signature         string   `json:"signature" binding:"omitempty,hex_bytes"`
}

// PublicDecryptRequest is the request body for POST /api/public-decrypt.
type PublicDecryptRequest struct {
	Handle          string `json:"handle" binding:"omitempty,hex_bytes"`
	ContractAddress string `json:"contractAddress"`
	UserAddress     string `json:"userAddress"`
}

// DecryptResponse is the response body for POST /api/decrypt and /api/public-decrypt.
type DecryptResponse struct {
	Handle string `json:"handle"`
	Value  uint64 `json:"value"`
}

// KolListResponse wraps the directory listing.
type KolListResponse struct {
	Kols  []domain.KolProfile `json:"kols"`
	Total int                 `json:"total"`
}

// FormatTime renders t the way every response does.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatUint renders an optional counter as a decimal string.
func FormatUint(v *uint64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatUint(*v, 10)
}
