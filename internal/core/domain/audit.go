package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the type of audited action.
type AuditAction string

const (
	AuditActionEncrypt       AuditAction = "ENCRYPT"
	AuditActionRelay         AuditAction = "RELAY"
	AuditActionTipSend       AuditAction = "TIP_SEND"
	AuditActionTipConfirm    AuditAction = "TIP_CONFIRM"
	AuditActionTipFail       AuditAction = "TIP_FAIL"
	AuditActionBalanceSet    AuditAction = "BALANCE_SET"
	AuditActionUserDecrypt   AuditAction = "USER_DECRYPT"
	AuditActionPublicDecrypt AuditAction = "PUBLIC_DECRYPT"
)

// AuditLog records a single audited action in the system.
type AuditLog struct {
	ID           uuid.UUID   `json:"id"`
	Actor        string      `json:"actor,omitempty"` // wallet address when known
	Action       AuditAction `json:"action"`
	ResourceType string      `json:"resource_type"`
	ResourceID   string      `json:"resource_id,omitempty"`
	Details      string      `json:"details,omitempty"` // JSON string
	IPAddress    string      `json:"ip_address"`
	CreatedAt    time.Time   `json:"created_at"`
}
