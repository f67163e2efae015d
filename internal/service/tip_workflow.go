package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	"github.com/rs/zerolog"
)

// WorkflowOptions configures the tipping workflow.
type WorkflowOptions struct {
	Strategy        domain.TipStrategy
	ContractAddress string
	ConfirmTimeout  time.Duration // bound on the confirmation wait inside one request
	NoticeTTL       time.Duration // lifetime of the success notice
	BusyTTL         time.Duration // expiry of the per (sender, KOL) in-flight claim
}

// TipWorkflow implements ports.TipService.
type TipWorkflow struct {
	kols     ports.KolDirectory
	enc      ports.Encryptor
	relay    ports.Relayer
	balances ports.BalanceService
	tips     ports.TipRepository
	guard    ports.RelayGuard
	opts     WorkflowOptions
	now      func() time.Time
	log      zerolog.Logger
}

// NewTipWorkflow creates a new TipWorkflow.
func NewTipWorkflow(
	kols ports.KolDirectory,
	enc ports.Encryptor,
	relay ports.Relayer,
	balances ports.BalanceService,
	tips ports.TipRepository,
	guard ports.RelayGuard,
	opts WorkflowOptions,
	log zerolog.Logger,
) *TipWorkflow {
	if opts.Strategy == "" {
		opts.Strategy = domain.StrategyRelay
	}
	return &TipWorkflow{
		kols:     kols,
		enc:      enc,
		relay:    relay,
		balances: balances,
		tips:     tips,
		guard:    guard,
		opts:     opts,
		now:      time.Now,
		log:      log,
	}
}

// EncryptTip validates and encrypts a single tip without submitting it.
func (s *TipWorkflow) EncryptTip(ctx context.Context, req domain.TipRequest) (*ports.EncryptTipResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	handle, _, err := s.encrypt(ctx, req)
	if err != nil {
		return nil, err
	}

	id := domain.NewEncryptionID(s.now())
	s.log.Info().
		Str("encryption_id", id).
		Str("to", req.ToAddress).
		Str("scheme", string(handle.Scheme)).
		Msg("tip encrypted")

	return &ports.EncryptTipResult{Ciphertext: handle.Hex(), EncryptionID: id}, nil
}

func (s *TipWorkflow) encrypt(ctx context.Context, req domain.TipRequest) (*domain.CiphertextHandle, uint32, error) {
	if !domain.IsAddress(s.opts.ContractAddress) {
		return nil, 0, apperror.ErrNotConfigured("Tips contract address is not configured")
	}
	scaled, err := req.ScaledAmount()
	if err != nil {
		return nil, 0, err
	}
	handle, err := s.enc.Encrypt(ctx, s.opts.ContractAddress, req.ToAddress, uint64(scaled))
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, 0, err
		}
		return nil, 0, apperror.ErrEncryptionFailure(err)
	}
	return handle, scaled, nil
}

// Send runs one tip from submission as far as it can go within the request.
// A non-nil record is returned alongside workflow errors; it is then Failed.
func (s *TipWorkflow) Send(ctx context.Context, in ports.SendTipInput) (*domain.TipRecord, error) {
	now := s.now()
	rec := domain.NewTipRecord(domain.NewEncryptionID(now), s.opts.Strategy, now)
	rec.KolID = in.KolID
	rec.FromAddress = in.FromAddress
	rec.ContractAddress = s.opts.ContractAddress
	_ = rec.Transition(domain.TipStateValidating, now)

	kol, req, err := s.validate(ctx, in)
	if err != nil {
		rec.Fail(err, s.now())
		s.logState(rec)
		if cerr := s.tips.Create(ctx, rec); cerr != nil {
			s.log.Warn().Err(cerr).Str("encryption_id", rec.EncryptionID).Msg("failed to store rejected tip")
		}
		return rec, err
	}
	rec.ToAddress = kol.WalletAddress

	busyKey := domain.TipBusyKey(rec.FromAddress, rec.KolID)
	claimed, err := s.guard.Claim(ctx, busyKey, s.opts.BusyTTL)
	if err != nil {
		return nil, apperror.ErrStorage(fmt.Errorf("claim busy flag: %w", err))
	}
	if !claimed {
		return nil, apperror.ErrTipInFlight()
	}
	if rec.Strategy == domain.StrategyRelay {
		defer s.release(ctx, busyKey)
	}

	if err := s.tips.Create(ctx, rec); err != nil {
		if rec.Strategy == domain.StrategyDirect {
			s.release(ctx, busyKey)
		}
		return nil, apperror.ErrStorage(err)
	}

	if err := s.advance(ctx, rec, domain.TipStateEncrypting); err != nil {
		return rec, err
	}
	handle, scaled, err := s.encrypt(ctx, req)
	if err != nil {
		s.fail(ctx, rec, err)
		return rec, err
	}
	rec.Ciphertext = handle.Hex()
	rec.AmountScaled = scaled

	if rec.Strategy == domain.StrategyDirect {
		wei, err := domain.EtherToWei(in.Amount)
		if err != nil {
			s.fail(ctx, rec, err)
			return rec, err
		}
		rec.ValueWei = wei.String()
		// The wallet sends the transfer and reports back through Confirm or ReportFailure.
		return rec, s.advance(ctx, rec, domain.TipStateRelaying)
	}

	if err := s.advance(ctx, rec, domain.TipStateRelaying); err != nil {
		return rec, err
	}
	res, err := s.relay.Submit(ctx, ports.RelayRequest{Ciphertext: rec.Ciphertext, ToAddress: rec.ToAddress})
	if err != nil {
		s.fail(ctx, rec, err)
		return rec, err
	}
	rec.ApplyResult(res)
	if err := s.advance(ctx, rec, domain.TipStateConfirming); err != nil {
		return rec, err
	}
	return s.awaitConfirmation(ctx, rec)
}

func (s *TipWorkflow) validate(ctx context.Context, in ports.SendTipInput) (*domain.KolProfile, domain.TipRequest, error) {
	if in.KolID == "" {
		return nil, domain.TipRequest{}, apperror.ErrMissingFields("kolId")
	}
	kol := s.kols.Get(ctx, in.KolID)
	if kol == nil {
		return nil, domain.TipRequest{}, apperror.Validation(fmt.Sprintf("Unknown KOL %q", in.KolID))
	}
	if !kol.Tippable() {
		return nil, domain.TipRequest{}, apperror.ErrInvalidAddress("KOL wallet", kol.WalletAddress)
	}
	req := domain.TipRequest{
		Amount:      in.Amount,
		FromAddress: in.FromAddress,
		ToAddress:   kol.WalletAddress,
		KolID:       kol.ID,
	}
	return kol, req, req.Validate()
}

// Get returns the record. A Confirming record is progressed by one receipt lookup.
func (s *TipWorkflow) Get(ctx context.Context, encryptionID string) (*domain.TipRecord, error) {
	rec, err := s.tips.Get(ctx, encryptionID)
	if err != nil {
		return nil, err
	}
	if rec.State != domain.TipStateConfirming || rec.TxHash == "" {
		return rec, nil
	}

	res, err := s.relay.Lookup(ctx, rec.TxHash)
	if err != nil {
		s.log.Warn().Err(err).Str("encryption_id", rec.EncryptionID).Msg("receipt lookup failed")
		return rec, nil
	}
	if !res.IsFinal() {
		return rec, nil
	}
	rec, _ = s.settle(ctx, rec, res)
	return rec, nil
}

// Confirm records the hash of a wallet-sent transfer for a direct tip and
// waits for it within the confirm timeout.
func (s *TipWorkflow) Confirm(ctx context.Context, encryptionID, txHash string) (*domain.TipRecord, error) {
	rec, err := s.tips.Get(ctx, encryptionID)
	if err != nil {
		return nil, err
	}
	if rec.Strategy != domain.StrategyDirect || rec.State != domain.TipStateRelaying {
		return nil, apperror.ErrInvalidTransition(string(rec.State), string(domain.TipStateConfirming))
	}
	hash, err := parseTxHash(txHash)
	if err != nil {
		return nil, err
	}

	rec.TxHash = hash.Hex()
	if err := s.advance(ctx, rec, domain.TipStateConfirming); err != nil {
		return rec, err
	}
	return s.awaitConfirmation(ctx, rec)
}

// ReportFailure fails a tip with an error reported by the browser wallet.
func (s *TipWorkflow) ReportFailure(ctx context.Context, encryptionID, walletError string) (*domain.TipRecord, error) {
	if walletError == "" {
		return nil, apperror.ErrMissingFields("error")
	}
	rec, err := s.tips.Get(ctx, encryptionID)
	if err != nil {
		return nil, err
	}
	if rec.State.IsTerminal() {
		return nil, apperror.ErrInvalidTransition(string(rec.State), string(domain.TipStateFailed))
	}

	s.fail(ctx, rec, apperror.ClassifyMessage(walletError))
	return rec, nil
}

// awaitConfirmation waits up to ConfirmTimeout. When no receipt is seen the
// record stays Confirming and later Get calls progress it.
func (s *TipWorkflow) awaitConfirmation(ctx context.Context, rec *domain.TipRecord) (*domain.TipRecord, error) {
	waitCtx := ctx
	if s.opts.ConfirmTimeout > 0 {
		var cancel context.CancelFunc
		waitCtx, cancel = context.WithTimeout(ctx, s.opts.ConfirmTimeout)
		defer cancel()
	}

	res, err := s.relay.WaitConfirmed(waitCtx, rec.TxHash)
	if err != nil {
		s.log.Info().Err(err).
			Str("encryption_id", rec.EncryptionID).
			Str("tx_hash", rec.TxHash).
			Msg("confirmation not observed yet")
		if res != nil && rec.ExplorerURL == "" {
			rec.ApplyResult(res)
			_ = s.save(context.WithoutCancel(ctx), rec)
		}
		return rec, nil
	}
	return s.settle(ctx, rec, res)
}

// settle applies a final receipt. Success credits the KOL balance once.
func (s *TipWorkflow) settle(ctx context.Context, rec *domain.TipRecord, res *domain.TransactionResult) (*domain.TipRecord, error) {
	ctx = context.WithoutCancel(ctx)
	rec.ApplyResult(res)

	if res.Status == domain.TxStatusReverted {
		err := apperror.ErrTransactionReverted(rec.TxHash)
		s.fail(ctx, rec, err)
		return rec, err
	}

	s.credit(ctx, rec)
	notice := s.now().Add(s.opts.NoticeTTL)
	rec.NoticeExpiresAt = &notice
	if err := s.advance(ctx, rec, domain.TipStateSucceeded); err != nil {
		return rec, err
	}
	s.finish(ctx, rec)
	return rec, nil
}

// credit accumulates the tip handle into the KOL balance. A failure is logged;
// the tip itself already succeeded on-chain.
func (s *TipWorkflow) credit(ctx context.Context, rec *domain.TipRecord) {
	claimed, err := s.guard.Claim(ctx, domain.TipSettleKey(rec.EncryptionID), s.opts.BusyTTL)
	if err != nil || !claimed {
		if err != nil {
			s.log.Warn().Err(err).Str("encryption_id", rec.EncryptionID).Msg("failed to claim settlement")
		}
		return
	}

	handle, err := s.enc.Parse(rec.Ciphertext)
	if err == nil {
		handle.ContractAddress = rec.ContractAddress
		handle.UserAddress = rec.ToAddress
		_, err = s.balances.Accumulate(ctx, rec.KolID, handle)
	}
	if err != nil {
		s.log.Error().Err(err).
			Str("encryption_id", rec.EncryptionID).
			Str("kol_id", rec.KolID).
			Msg("failed to credit KOL balance")
	}
}

func (s *TipWorkflow) advance(ctx context.Context, rec *domain.TipRecord, to domain.TipState) error {
	if err := rec.Transition(to, s.now()); err != nil {
		return err
	}
	s.logState(rec)
	return s.save(ctx, rec)
}

func (s *TipWorkflow) fail(ctx context.Context, rec *domain.TipRecord, cause error) {
	ctx = context.WithoutCancel(ctx)
	rec.Fail(cause, s.now())
	s.logState(rec)
	_ = s.save(ctx, rec)
	s.finish(ctx, rec)
}

// finish releases the busy flag of a direct tip once it is terminal. Relay
// tips release it when Send returns.
func (s *TipWorkflow) finish(ctx context.Context, rec *domain.TipRecord) {
	if rec.Strategy == domain.StrategyDirect && rec.State.IsTerminal() {
		s.release(ctx, domain.TipBusyKey(rec.FromAddress, rec.KolID))
	}
}

func (s *TipWorkflow) release(ctx context.Context, key string) {
	if err := s.guard.Release(context.WithoutCancel(ctx), key); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to release busy flag")
	}
}

func (s *TipWorkflow) save(ctx context.Context, rec *domain.TipRecord) error {
	if err := s.tips.Update(ctx, rec); err != nil {
		s.log.Error().Err(err).Str("encryption_id", rec.EncryptionID).Msg("failed to store tip")
		return apperror.ErrStorage(err)
	}
	return nil
}

func (s *TipWorkflow) logState(rec *domain.TipRecord) {
	ev := s.log.Info()
	if rec.State == domain.TipStateFailed {
		ev = s.log.Warn().Str("error_kind", string(rec.ErrorKind)).Str("error", rec.ErrorMessage)
	}
	ev.Str("encryption_id", rec.EncryptionID).
		Str("kol_id", rec.KolID).
		Str("state", string(rec.State)).
		Msg("tip state changed")
}
