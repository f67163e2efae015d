package domain

import (
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/google/uuid"
)

// EncryptionScheme names the backend that produced a handle.
type EncryptionScheme string

const (
	SchemeMock   EncryptionScheme = "mock"
	SchemeSealed EncryptionScheme = "sealed"
)

// CiphertextHandle is an opaque encrypted value bound to a
// (contract, user) pair. Only the bytes leave the process.
type CiphertextHandle struct {
	Handle          []byte
	ContractAddress string
	UserAddress     string
	Scheme          EncryptionScheme
}

// Hex renders the handle as 0x-prefixed hex.
func (h *CiphertextHandle) Hex() string {
	return hexutil.Encode(h.Handle)
}

const encryptionIDSuffixLen = 9

// NewEncryptionID returns an identifier of the form enc_<unix-millis>_<9 base36 chars>.
func NewEncryptionID(now time.Time) string {
	id := uuid.New()
	suffix := new(big.Int).SetBytes(id[:]).Text(36)
	if len(suffix) < encryptionIDSuffixLen {
		suffix = strings.Repeat("0", encryptionIDSuffixLen-len(suffix)) + suffix
	}
	return fmt.Sprintf("enc_%d_%s", now.UnixMilli(), suffix[len(suffix)-encryptionIDSuffixLen:])
}
