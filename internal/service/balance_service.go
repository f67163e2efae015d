package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	"github.com/rs/zerolog"
)

// BalanceServiceImpl implements ports.BalanceService.
type BalanceServiceImpl struct {
	store ports.BalanceStore
	kols  ports.KolDirectory
	enc   ports.Encryptor
	log   zerolog.Logger
}

// NewBalanceService creates a new BalanceServiceImpl.
func NewBalanceService(store ports.BalanceStore, kols ports.KolDirectory, enc ports.Encryptor, log zerolog.Logger) *BalanceServiceImpl {
	return &BalanceServiceImpl{store: store, kols: kols, enc: enc, log: log}
}

// Get returns the stored balance, or nil when the KOL has none.
func (s *BalanceServiceImpl) Get(ctx context.Context, kolID string) (*domain.EncryptedBalance, error) {
	if kolID == "" {
		return nil, apperror.ErrMissingFields("kolId")
	}
	bal, err := s.store.Get(ctx, kolID)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	return bal, nil
}

// Set overwrites the blob verbatim. A JSON null counts as missing.
func (s *BalanceServiceImpl) Set(ctx context.Context, kolID string, blob []byte) (*domain.EncryptedBalance, error) {
	trimmed := bytes.TrimSpace(blob)
	if kolID == "" || len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, apperror.ErrMissingFields("kolId, encryptedBalance")
	}
	if !json.Valid(trimmed) {
		return nil, apperror.Validation("encryptedBalance must be valid JSON")
	}

	bal, err := s.store.Set(ctx, kolID, json.RawMessage(trimmed))
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	s.log.Info().Str("kol_id", kolID).Int64("version", bal.Version).Msg("balance overwritten")
	return bal, nil
}

// Accumulate adds a tip handle to the KOL's running total. A missing or
// foreign blob is replaced by the tip itself.
func (s *BalanceServiceImpl) Accumulate(ctx context.Context, kolID string, tip *domain.CiphertextHandle) (*domain.EncryptedBalance, error) {
	if kolID == "" || tip == nil {
		return nil, apperror.ErrMissingFields("kolId, tip")
	}

	bal, err := s.store.Update(ctx, kolID, func(current *domain.EncryptedBalance) (json.RawMessage, error) {
		prev := s.currentHandle(kolID, current, tip)
		if prev == nil {
			return domain.BalanceBlobFromHandle(tip), nil
		}
		sum, err := s.enc.Add(ctx, prev, tip)
		if err != nil {
			return nil, err
		}
		return domain.BalanceBlobFromHandle(sum), nil
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperror.ErrStorage(err)
	}

	s.log.Info().Str("kol_id", kolID).Int64("version", bal.Version).Msg("balance accumulated")
	return bal, nil
}

// currentHandle parses the stored blob as a handle bound like tip. Blobs
// that are not handles, or handles bound to another pair, yield nil.
func (s *BalanceServiceImpl) currentHandle(kolID string, current *domain.EncryptedBalance, tip *domain.CiphertextHandle) *domain.CiphertextHandle {
	hexHandle, ok := current.HandleHex()
	if !ok {
		if current != nil {
			s.log.Warn().Str("kol_id", kolID).Msg("stored balance is not a handle, restarting from tip")
		}
		return nil
	}
	prev, err := s.enc.Parse(hexHandle)
	if err != nil {
		s.log.Warn().Err(err).Str("kol_id", kolID).Msg("stored balance unreadable, restarting from tip")
		return nil
	}
	if err := s.enc.Verify(prev, tip.ContractAddress, tip.UserAddress); err != nil {
		s.log.Warn().Err(err).Str("kol_id", kolID).Msg("stored balance bound elsewhere, restarting from tip")
		return nil
	}
	prev.ContractAddress = tip.ContractAddress
	prev.UserAddress = tip.UserAddress
	return prev
}
