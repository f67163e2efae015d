package domain

// TxStatus is the observed state of a submitted transaction.
type TxStatus string

const (
	TxStatusPending   TxStatus = "pending"
	TxStatusConfirmed TxStatus = "confirmed"
	TxStatusReverted  TxStatus = "reverted"
)

// TransactionResult describes a submitted transaction. BlockNumber and
// GasUsed stay nil until a receipt is observed.
type TransactionResult struct {
	TxHash      string   `json:"txHash"`
	BlockNumber *uint64  `json:"blockNumber,omitempty"`
	GasUsed     *uint64  `json:"gasUsed,omitempty"`
	Network     string   `json:"network"`
	ExplorerURL string   `json:"explorerUrl"`
	Status      TxStatus `json:"status"`
}

// IsFinal returns true once a receipt has been observed.
func (r *TransactionResult) IsFinal() bool {
	return r.Status == TxStatusConfirmed || r.Status == TxStatusReverted
}
