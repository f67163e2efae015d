package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"math/big"

	"private-tips/internal/core/domain"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Encryptor produces and combines ciphertext handles bound to a
// (contract, user) pair.
type Encryptor interface {
	Encrypt(ctx context.Context, contractAddress, userAddress string, value uint64) (*domain.CiphertextHandle, error)
	// Add accumulates tip into balance. Both must be bound to the same pair.
	Add(ctx context.Context, balance, tip *domain.CiphertextHandle) (*domain.CiphertextHandle, error)
	Decrypt(ctx context.Context, handle *domain.CiphertextHandle, contractAddress, userAddress string) (uint64, error)
	Verify(handle *domain.CiphertextHandle, contractAddress, userAddress string) error
	Parse(hexHandle string) (*domain.CiphertextHandle, error)
	Scheme() domain.EncryptionScheme
}

// ChainClient is the subset of the JSON-RPC node API the relay needs.
// Implementations return apperror kinds, not raw node errors.
type ChainClient interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	// TransactionReceipt returns nil, nil while the transaction is pending.
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

// --- Service Ports (Business Logic) ---

// KolDirectory is the read-only creator directory.
type KolDirectory interface {
	List(ctx context.Context) []domain.KolProfile
	// Get returns nil when the id is unknown.
	Get(ctx context.Context, id string) *domain.KolProfile
	FindByAddress(ctx context.Context, address string) *domain.KolProfile
}

// Relayer submits ciphertext handles on-chain from the server signer.
type Relayer interface {
	// Submit sends exactly one transaction and returns once the node accepted it.
	Submit(ctx context.Context, req RelayRequest) (*domain.TransactionResult, error)
	// WaitConfirmed blocks until the transaction is in a block or ctx ends.
	WaitConfirmed(ctx context.Context, txHash string) (*domain.TransactionResult, error)
	// Lookup performs a single receipt check.
	Lookup(ctx context.Context, txHash string) (*domain.TransactionResult, error)
	// Relay is Submit followed by a bounded WaitConfirmed. Replays of a
	// RequestID return the stored result.
	Relay(ctx context.Context, req RelayRequest) (*domain.TransactionResult, error)
}

// RelayRequest holds validated input for a relayed transaction.
type RelayRequest struct {
	Ciphertext string // 0x-prefixed handle bytes, sent as calldata
	ToAddress  string
	Value      *big.Int // nil means zero
	RequestID  string   // optional client idempotency key
}

// BalanceService reads, overwrites and accumulates KOL balances.
type BalanceService interface {
	Get(ctx context.Context, kolID string) (*domain.EncryptedBalance, error)
	Set(ctx context.Context, kolID string, blob []byte) (*domain.EncryptedBalance, error)
	Accumulate(ctx context.Context, kolID string, tip *domain.CiphertextHandle) (*domain.EncryptedBalance, error)
}

// TipService drives the tipping workflow.
type TipService interface {
	EncryptTip(ctx context.Context, req domain.TipRequest) (*EncryptTipResult, error)
	Send(ctx context.Context, in SendTipInput) (*domain.TipRecord, error)
	// Get returns the record, progressing a Confirming record by one receipt lookup.
	Get(ctx context.Context, encryptionID string) (*domain.TipRecord, error)
	Confirm(ctx context.Context, encryptionID, txHash string) (*domain.TipRecord, error)
	ReportFailure(ctx context.Context, encryptionID, walletError string) (*domain.TipRecord, error)
}

// EncryptTipResult is the output of a standalone tip encryption.
type EncryptTipResult struct {
	Ciphertext   string `json:"ciphertext"`
	EncryptionID string `json:"encryptionId"`
}

// SendTipInput holds input for a full tip submission.
type SendTipInput struct {
	KolID       string
	Amount      float64
	FromAddress string
}

// DecryptService authorizes and performs decryption of a handle.
type DecryptService interface {
	UserDecrypt(ctx context.Context, req UserDecryptRequest) (*UserDecryptResult, error)
	// PublicDecrypt opens handles of contracts configured as public. No grant is needed.
	PublicDecrypt(ctx context.Context, req PublicDecryptRequest) (*UserDecryptResult, error)
}

// PublicDecryptRequest names a handle and the pair it is bound to.
type PublicDecryptRequest struct {
	Handle          string
	ContractAddress string
	UserAddress     string
}

// UserDecryptRequest carries an EIP-712 signed decryption grant.
type UserDecryptRequest struct {
	Handle            string
	ContractAddress   string
	UserAddress       string
	PublicKey         string   // hex
	ContractAddresses []string // addresses the grant covers
	StartTimestamp    int64    // unix seconds
	DurationDays      int64
	Signature         string // 65-byte hex
}

// UserDecryptResult is the plaintext of a decrypted handle.
type UserDecryptResult struct {
	Handle string `json:"handle"`
	Value  uint64 `json:"value"`
}

// AuditService records audit entries without blocking the caller.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}
