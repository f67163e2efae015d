package service

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/rs/zerolog"
)

// RelayOptions configures the relay signer and its target network.
type RelayOptions struct {
	PrivateKey      string // hex; empty disables submission
	ChainID         uint64
	NetworkName     string
	ExplorerURL     string
	ContractAddress string
	ConfirmTimeout  time.Duration
	PollInterval    time.Duration
	VerifyBinding   bool
	IdempotencyTTL  time.Duration
	HandleClaimTTL  time.Duration // 0 keeps a relayed handle claimed forever
}

// RelayServiceImpl implements ports.Relayer.
type RelayServiceImpl struct {
	chain ports.ChainClient
	guard ports.RelayGuard
	cache ports.IdempotencyCache
	enc   ports.Encryptor
	opts  RelayOptions
	key   *ecdsa.PrivateKey
	from  common.Address
	log   zerolog.Logger
}

// NewRelayService creates a relay. A malformed private key is a startup
// error; a missing one is reported on each Submit.
func NewRelayService(
	chain ports.ChainClient,
	guard ports.RelayGuard,
	cache ports.IdempotencyCache,
	enc ports.Encryptor,
	opts RelayOptions,
	log zerolog.Logger,
) (*RelayServiceImpl, error) {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	s := &RelayServiceImpl{
		chain: chain,
		guard: guard,
		cache: cache,
		enc:   enc,
		opts:  opts,
		log:   log,
	}
	if opts.PrivateKey != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(opts.PrivateKey, "0x"))
		if err != nil {
			return nil, fmt.Errorf("parsing relay private key: %w", err)
		}
		s.key = key
		s.from = crypto.PubkeyToAddress(key.PublicKey)
	}
	return s, nil
}

// SignerAddress returns the relay account, or the zero address when no key is set.
func (s *RelayServiceImpl) SignerAddress() common.Address {
	return s.from
}

// Submit validates the request, checks the network and signer, claims the
// handle and sends one signed transaction carrying the ciphertext as calldata.
func (s *RelayServiceImpl) Submit(ctx context.Context, req ports.RelayRequest) (*domain.TransactionResult, error) {
	if req.Ciphertext == "" || req.ToAddress == "" {
		return nil, apperror.ErrMissingFields("ciphertext, toAddress")
	}
	if !domain.IsAddress(req.ToAddress) {
		return nil, apperror.ErrInvalidAddress("toAddress", req.ToAddress)
	}
	handle, err := s.enc.Parse(req.Ciphertext)
	if err != nil {
		return nil, err
	}
	value := req.Value
	if value == nil {
		value = new(big.Int)
	}

	if s.key == nil {
		return nil, apperror.ErrSigningKeyMissing()
	}
	if s.opts.VerifyBinding {
		if err := s.enc.Verify(handle, s.opts.ContractAddress, req.ToAddress); err != nil {
			return nil, err
		}
	}

	chainID, err := s.chain.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	if !chainID.IsUint64() || chainID.Uint64() != s.opts.ChainID {
		return nil, apperror.ErrWrongChain(s.opts.ChainID, chainID.String())
	}

	balance, err := s.chain.BalanceAt(ctx, s.from, nil)
	if err != nil {
		return nil, err
	}
	if balance.Sign() == 0 {
		return nil, apperror.ErrInsufficientFunds()
	}

	claimKey := domain.RelayHandleKey(handle.Hex())
	claimed, err := s.guard.Claim(ctx, claimKey, s.opts.HandleClaimTTL)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("claim handle: %w", err))
	}
	if !claimed {
		return nil, apperror.ErrAlreadyRelayed()
	}

	signed, err := s.buildTransaction(ctx, chainID, common.HexToAddress(req.ToAddress), value, handle.Handle, balance)
	if err == nil {
		err = s.chain.SendTransaction(ctx, signed)
	}
	if err != nil {
		if rejected(err) {
			if relErr := s.guard.Release(context.WithoutCancel(ctx), claimKey); relErr != nil {
				s.log.Warn().Err(relErr).Str("key", claimKey).Msg("failed to release handle claim")
			}
		}
		return nil, err
	}

	txHash := signed.Hash().Hex()
	s.log.Info().
		Str("tx_hash", txHash).
		Str("from", s.from.Hex()).
		Str("to", req.ToAddress).
		Str("network", s.opts.NetworkName).
		Uint64("chain_id", s.opts.ChainID).
		Msg("relay transaction submitted")

	return s.pending(txHash), nil
}

func (s *RelayServiceImpl) buildTransaction(ctx context.Context, chainID *big.Int, to common.Address, value *big.Int, data []byte, balance *big.Int) (*types.Transaction, error) {
	nonce, err := s.chain.PendingNonceAt(ctx, s.from)
	if err != nil {
		return nil, err
	}
	gasPrice, err := s.chain.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}
	gas, err := s.chain.EstimateGas(ctx, goethereum.CallMsg{
		From:     s.from,
		To:       &to,
		GasPrice: gasPrice,
		Value:    value,
		Data:     data,
	})
	if err != nil {
		return nil, err
	}

	cost := new(big.Int).Mul(gasPrice, new(big.Int).SetUint64(gas))
	cost.Add(cost, value)
	if balance.Cmp(cost) < 0 {
		return nil, apperror.ErrInsufficientFunds()
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gas,
		GasPrice: gasPrice,
		Data:     data,
	})
	signed, err := types.SignTx(tx, types.NewEIP155Signer(chainID), s.key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sign transaction: %w", err))
	}
	return signed, nil
}

// rejected reports whether err means the transaction certainly did not
// reach the mempool, so the handle can be offered again.
func rejected(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !apperror.IsKind(err, apperror.KindNetwork)
}

// Lookup performs a single receipt check.
func (s *RelayServiceImpl) Lookup(ctx context.Context, txHash string) (*domain.TransactionResult, error) {
	hash, err := parseTxHash(txHash)
	if err != nil {
		return nil, err
	}
	receipt, err := s.chain.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, err
	}
	res := s.pending(hash.Hex())
	if receipt == nil {
		return res, nil
	}

	gasUsed := receipt.GasUsed
	res.GasUsed = &gasUsed
	if receipt.BlockNumber != nil {
		block := receipt.BlockNumber.Uint64()
		res.BlockNumber = &block
	}
	res.Status = domain.TxStatusConfirmed
	if receipt.Status != types.ReceiptStatusSuccessful {
		res.Status = domain.TxStatusReverted
	}
	return res, nil
}

// WaitConfirmed polls until the transaction is in a block. It has no
// timeout of its own: when ctx ends the last pending result is returned
// together with ctx.Err().
func (s *RelayServiceImpl) WaitConfirmed(ctx context.Context, txHash string) (*domain.TransactionResult, error) {
	ticker := time.NewTicker(s.opts.PollInterval)
	defer ticker.Stop()

	for {
		res, err := s.Lookup(ctx, txHash)
		if err != nil && ctx.Err() == nil {
			return nil, err
		}
		if err == nil && res.IsFinal() {
			ev := s.log.Info().Str("tx_hash", res.TxHash).Str("status", string(res.Status))
			if res.BlockNumber != nil {
				ev = ev.Uint64("block", *res.BlockNumber)
			}
			ev.Msg("relay transaction mined")
			return res, nil
		}

		select {
		case <-ctx.Done():
			return s.pending(txHash), ctx.Err()
		case <-ticker.C:
		}
	}
}

// Relay submits and waits up to ConfirmTimeout. An expired wait is not an
// error: the result is returned with status pending.
func (s *RelayServiceImpl) Relay(ctx context.Context, req ports.RelayRequest) (*domain.TransactionResult, error) {
	var cacheKey string
	if req.RequestID != "" && s.cache != nil {
		cacheKey = domain.RelayIdempotencyKey(req.RequestID)
		if res := s.replay(ctx, cacheKey); res != nil {
			return res, nil
		}
	}

	res, err := s.Submit(ctx, req)
	if err != nil {
		return nil, err
	}

	res = s.confirmWithin(ctx, res)
	if cacheKey != "" {
		s.remember(ctx, cacheKey, res)
	}
	return res, nil
}

func (s *RelayServiceImpl) confirmWithin(ctx context.Context, res *domain.TransactionResult) *domain.TransactionResult {
	waitCtx := ctx
	if s.opts.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.opts.ConfirmTimeout)
		defer cancel()
	}
	final, err := s.WaitConfirmed(waitCtx, res.TxHash)
	if err != nil {
		s.log.Warn().Err(err).Str("tx_hash", res.TxHash).Msg("confirmation not observed, outcome unknown")
		return res
	}
	return final
}

// replay returns a stored result for the key, refreshing it once if it
// was still pending when stored.
func (s *RelayServiceImpl) replay(ctx context.Context, key string) *domain.TransactionResult {
	cached, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("relay idempotency check failed, submitting")
		return nil
	}
	if cached == nil {
		return nil
	}

	var res domain.TransactionResult
	if err := json.Unmarshal(cached, &res); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("discarding unreadable cached relay result")
		return nil
	}
	if res.Status == domain.TxStatusPending {
		if fresh, err := s.Lookup(ctx, res.TxHash); err == nil && fresh.IsFinal() {
			s.remember(ctx, key, fresh)
			return fresh
		}
	}
	return &res
}

func (s *RelayServiceImpl) remember(ctx context.Context, key string, res *domain.TransactionResult) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(context.WithoutCancel(ctx), key, data, s.opts.IdempotencyTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache relay result")
	}
}

func (s *RelayServiceImpl) pending(txHash string) *domain.TransactionResult {
	return &domain.TransactionResult{
		TxHash:      txHash,
		Network:     s.opts.NetworkName,
		ExplorerURL: strings.TrimRight(s.opts.ExplorerURL, "/") + "/tx/" + txHash,
		Status:      domain.TxStatusPending,
	}
}

func parseTxHash(txHash string) (common.Hash, error) {
	raw, err := hexutil.Decode(txHash)
	if err != nil || len(raw) != common.HashLength {
		return common.Hash{}, apperror.Validation("Invalid transaction hash")
	}
	return common.BytesToHash(raw), nil
}
