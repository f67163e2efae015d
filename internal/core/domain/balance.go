package domain

import (
	"encoding/json"
	"time"
)

// EncryptedBalance is the opaque running total kept for one KOL.
// Blob is never interpreted by the store.
type EncryptedBalance struct {
	KolID       string          `json:"kolId"`
	Blob        json.RawMessage `json:"encryptedBalance"`
	LastUpdated time.Time       `json:"lastUpdated"`
	Version     int64           `json:"version"`
}

// BalanceBlobFromHandle wraps a handle's hex string as a JSON blob.
func BalanceBlobFromHandle(h *CiphertextHandle) json.RawMessage {
	b, _ := json.Marshal(h.Hex())
	return b
}

// HandleHex extracts a hex handle from a blob written by the workflow.
// ok is false when the blob holds anything else.
func (b *EncryptedBalance) HandleHex() (string, bool) {
	if b == nil || len(b.Blob) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(b.Blob, &s); err != nil || s == "" {
		return "", false
	}
	return s, true
}
