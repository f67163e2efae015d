package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AuditLog records successful (2xx) write requests. Handlers put the acting
// wallet under CtxActor and the produced id under CtxResourceID.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status >= 300 || c.Request.Method != http.MethodPost {
			return
		}

		action, resourceType := mapRouteToAction(c.FullPath())
		if action == "" {
			return
		}

		resourceID := c.GetString(CtxResourceID)
		if resourceID == "" {
			resourceID = c.Param("encryptionId")
		}

		details, _ := json.Marshal(map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"request_id": c.GetString(response.RequestIDKey),
		})

		auditSvc.Log(c.Request.Context(), &domain.AuditLog{
			ID:           uuid.New(),
			Actor:        c.GetString(CtxActor),
			Action:       action,
			ResourceType: resourceType,
			ResourceID:   resourceID,
			IPAddress:    c.ClientIP(),
			Details:      string(details),
			CreatedAt:    time.Now(),
		})
	}
}

func mapRouteToAction(route string) (domain.AuditAction, string) {
	switch route {
	case "/api/encrypt-tip":
		return domain.AuditActionEncrypt, "ciphertext"
	case "/api/relay-tx":
		return domain.AuditActionRelay, "transaction"
	case "/api/tips":
		return domain.AuditActionTipSend, "tip"
	case "/api/tips/:encryptionId/confirm":
		return domain.AuditActionTipConfirm, "tip"
	case "/api/tips/:encryptionId/fail":
		return domain.AuditActionTipFail, "tip"
	case "/api/kol-balance":
		return domain.AuditActionBalanceSet, "balance"
	case "/api/decrypt":
		return domain.AuditActionUserDecrypt, "handle"
	case "/api/public-decrypt":
		return domain.AuditActionPublicDecrypt, "handle"
	}
	return "", ""
}
