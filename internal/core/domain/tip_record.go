package domain

import (
	"time"

	"private-tips/pkg/apperror"
)

// TipStrategy selects how the ciphertext reaches the chain.
type TipStrategy string

const (
	// StrategyRelay sends the ciphertext as transaction payload signed by the server.
	StrategyRelay TipStrategy = "relay"
	// StrategyDirect keeps the ciphertext off-chain; the wallet sends a plain transfer.
	StrategyDirect TipStrategy = "direct"
)

// TipState is a step of the tipping workflow.
type TipState string

const (
	TipStateIdle       TipState = "idle"
	TipStateValidating TipState = "validating"
	TipStateEncrypting TipState = "encrypting"
	TipStateRelaying   TipState = "relaying"
	TipStateConfirming TipState = "confirming"
	TipStateSucceeded  TipState = "succeeded"
	TipStateFailed     TipState = "failed"
)

var nextStates = map[TipState]TipState{
	TipStateIdle:       TipStateValidating,
	TipStateValidating: TipStateEncrypting,
	TipStateEncrypting: TipStateRelaying,
	TipStateRelaying:   TipStateConfirming,
	TipStateConfirming: TipStateSucceeded,
}

// IsTerminal returns true for Succeeded and Failed.
func (s TipState) IsTerminal() bool {
	return s == TipStateSucceeded || s == TipStateFailed
}

// CanTransition reports whether the workflow may move from one state to another.
// Any non-terminal state may fail.
func CanTransition(from, to TipState) bool {
	if from.IsTerminal() {
		return false
	}
	if to == TipStateFailed {
		return true
	}
	return nextStates[from] == to
}

// StateTransition is one entry of a record's history.
type StateTransition struct {
	From TipState  `json:"from"`
	To   TipState  `json:"to"`
	At   time.Time `json:"at"`
}

// TipRecord tracks one tip from submission to its outcome.
type TipRecord struct {
	EncryptionID    string            `json:"encryptionId"`
	KolID           string            `json:"kolId,omitempty"`
	FromAddress     string            `json:"from"`
	ToAddress       string            `json:"to"`
	ContractAddress string            `json:"contractAddress"`
	Ciphertext      string            `json:"ciphertext,omitempty"`
	AmountScaled    uint32            `json:"amountScaled,omitempty"`
	ValueWei        string            `json:"valueWei,omitempty"`
	Strategy        TipStrategy       `json:"strategy"`
	State           TipState          `json:"state"`
	TxHash          string            `json:"txHash,omitempty"`
	BlockNumber     *uint64           `json:"blockNumber,omitempty"`
	GasUsed         *uint64           `json:"gasUsed,omitempty"`
	ExplorerURL     string            `json:"explorerUrl,omitempty"`
	ErrorKind       apperror.Kind     `json:"errorKind,omitempty"`
	ErrorMessage    string            `json:"error,omitempty"`
	Transitions     []StateTransition `json:"transitions"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
	NoticeExpiresAt *time.Time        `json:"noticeExpiresAt,omitempty"`
}

// NewTipRecord starts a record in Idle.
func NewTipRecord(id string, strategy TipStrategy, now time.Time) *TipRecord {
	return &TipRecord{
		EncryptionID: id,
		Strategy:     strategy,
		State:        TipStateIdle,
		Transitions:  []StateTransition{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Transition moves the record to the given state.
func (r *TipRecord) Transition(to TipState, at time.Time) error {
	if !CanTransition(r.State, to) {
		return apperror.ErrInvalidTransition(string(r.State), string(to))
	}
	r.Transitions = append(r.Transitions, StateTransition{From: r.State, To: to, At: at})
	r.State = to
	r.UpdatedAt = at
	return nil
}

// Fail moves the record to Failed, keeping the error kind and its
// user-facing text. It is a no-op on a terminal record.
func (r *TipRecord) Fail(err error, at time.Time) {
	if r.State.IsTerminal() {
		return
	}
	r.ErrorKind = apperror.KindOf(err)
	r.ErrorMessage = apperror.Humanize(err)
	_ = r.Transition(TipStateFailed, at)
}

// ApplyResult copies the observable fields of a transaction result.
func (r *TipRecord) ApplyResult(res *TransactionResult) {
	if res == nil {
		return
	}
	r.TxHash = res.TxHash
	r.BlockNumber = res.BlockNumber
	r.GasUsed = res.GasUsed
	r.ExplorerURL = res.ExplorerURL
}

// NoticeActive reports whether the transient success notice is still shown.
func (r *TipRecord) NoticeActive(now time.Time) bool {
	return r.NoticeExpiresAt != nil && now.Before(*r.NoticeExpiresAt)
}

// StatusMessage is the progress text shown for the current state.
func (r *TipRecord) StatusMessage(now time.Time) string {
	switch r.State {
	case TipStateValidating:
		return "Validating tip..."
	case TipStateEncrypting:
		return "Encrypting tip amount with FHE..."
	case TipStateRelaying:
		if r.Strategy == StrategyDirect {
			return "Waiting for wallet confirmation..."
		}
		return "Sending FHE-protected transaction..."
	case TipStateConfirming:
		return "Transaction sent! Waiting for confirmation..."
	case TipStateSucceeded:
		if r.NoticeActive(now) {
			return "Tip sent successfully with FHE protection!"
		}
		return ""
	case TipStateFailed:
		return r.ErrorMessage
	}
	return ""
}
