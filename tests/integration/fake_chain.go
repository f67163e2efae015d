package integration

import (
	"context"
	"math/big"
	"sync"
	"time"

	"private-tips/internal/core/domain"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// fakeChain is an in-process node. Sent transactions are mined once
// mineDelay has passed; external hashes can be mined for wallet-sent tips.
type fakeChain struct {
	mu        sync.Mutex
	chainID   *big.Int
	balance   *big.Int
	gasPrice  *big.Int
	nonce     uint64
	block     uint64
	mineDelay time.Duration
	manual    bool // receipts only appear after mine()
	sent      map[common.Hash]sentTx
	receipts  map[common.Hash]*types.Receipt
	reverts   map[common.Address]bool
}

type sentTx struct {
	tx *types.Transaction
	at time.Time
}

func newFakeChain(chainID uint64) *fakeChain {
	return &fakeChain{
		chainID:  new(big.Int).SetUint64(chainID),
		balance:  new(big.Int).Mul(big.NewInt(1), big.NewInt(1_000_000_000_000_000_000)),
		gasPrice: big.NewInt(2_000_000_000),
		block:    7_000_000,
		sent:     make(map[common.Hash]sentTx),
		receipts: make(map[common.Hash]*types.Receipt),
		reverts:  make(map[common.Address]bool),
	}
}

func (f *fakeChain) ChainID(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.chainID), nil
}

func (f *fakeChain) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return new(big.Int).Set(f.balance), nil
}

func (f *fakeChain) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.nonce, nil
}

func (f *fakeChain) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return new(big.Int).Set(f.gasPrice), nil
}

func (f *fakeChain) EstimateGas(ctx context.Context, msg goethereum.CallMsg) (uint64, error) {
	return 21_000 + 16*uint64(len(msg.Data)), nil
}

func (f *fakeChain) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent[tx.Hash()] = sentTx{tx: tx, at: time.Now()}
	f.nonce++
	return nil
}

func (f *fakeChain) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r, ok := f.receipts[txHash]; ok {
		return r, nil
	}
	s, ok := f.sent[txHash]
	if !ok || f.manual || time.Since(s.at) < f.mineDelay {
		return nil, nil
	}
	return f.mineLocked(txHash, s.tx), nil
}

// mine produces a receipt for hash, which need not have been sent here.
func (f *fakeChain) mine(hash string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := common.HexToHash(hash)
	f.mineLocked(h, f.sent[h].tx)
}

func (f *fakeChain) mineLocked(hash common.Hash, tx *types.Transaction) *types.Receipt {
	f.block++
	r := &types.Receipt{
		TxHash:      hash,
		Status:      types.ReceiptStatusSuccessful,
		BlockNumber: new(big.Int).SetUint64(f.block),
		GasUsed:     21_000,
	}
	if tx != nil {
		r.GasUsed = tx.Gas()
		if tx.To() != nil && f.reverts[*tx.To()] {
			r.Status = types.ReceiptStatusFailed
		}
	}
	f.receipts[hash] = r
	return r
}

func (f *fakeChain) setBalance(wei int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance = big.NewInt(wei)
}

func (f *fakeChain) setMineDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mineDelay = d
}

func (f *fakeChain) setManual(manual bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.manual = manual
}

func (f *fakeChain) revertTo(addr string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reverts[common.HexToAddress(addr)] = true
}

func (f *fakeChain) sentCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.sent)
}

func (f *fakeChain) sentData() [][]byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]byte, 0, len(f.sent))
	for _, s := range f.sent {
		out = append(out, s.tx.Data())
	}
	return out
}

// Ping and Name make the node its own health check.
func (f *fakeChain) Ping(ctx context.Context) error { return nil }
func (f *fakeChain) Name() string                   { return "ethereum-rpc" }

// recordingAuditRepo keeps audit entries in memory.
type recordingAuditRepo struct {
	mu      sync.Mutex
	entries []*domain.AuditLog
}

func (r *recordingAuditRepo) Create(ctx context.Context, log *domain.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, log)
	return nil
}

func (r *recordingAuditRepo) actions() []domain.AuditAction {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.AuditAction, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Action)
	}
	return out
}
