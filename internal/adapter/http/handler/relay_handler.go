package handler

import (
	"fmt"

	"private-tips/internal/adapter/http/dto"
	"private-tips/internal/adapter/http/middleware"
	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"
	"private-tips/pkg/response"

	"github.com/gin-gonic/gin"
)

// RelayHandler relays client-produced ciphertext from the server signer.
type RelayHandler struct {
	relayer ports.Relayer
}

// NewRelayHandler creates a new RelayHandler.
func NewRelayHandler(relayer ports.Relayer) *RelayHandler {
	return &RelayHandler{relayer: relayer}
}

// Relay handles POST /api/relay-tx. It answers 200 once the transaction is
// mined and 202 when the confirmation wait ran out first.
func (h *RelayHandler) Relay(c *gin.Context) {
	var req dto.RelayTxRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}
	requestID := req.RequestID
	if requestID == "" {
		requestID = c.GetHeader(middleware.HeaderIdempotencyKey)
	}

	res, err := h.relayer.Relay(c.Request.Context(), ports.RelayRequest{
		Ciphertext: req.Ciphertext,
		ToAddress:  req.ToAddress,
		RequestID:  requestID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, res.TxHash)

	switch res.Status {
	case domain.TxStatusReverted:
		response.Error(c, apperror.ErrTransactionReverted(res.TxHash))
	case domain.TxStatusPending:
		response.Accepted(c, toRelayResponse(res, fmt.Sprintf("Transaction sent to %s, confirmation pending", res.Network)))
	default:
		response.OK(c, toRelayResponse(res, fmt.Sprintf("Transaction confirmed on %s", res.Network)))
	}
}

func toRelayResponse(res *domain.TransactionResult, message string) dto.RelayTxResponse {
	return dto.RelayTxResponse{
		TxHash:       res.TxHash,
		BlockNumber:  dto.FormatUint(res.BlockNumber),
		GasUsed:      dto.FormatUint(res.GasUsed),
		Network:      res.Network,
		ExplorerURL:  res.ExplorerURL,
		EtherscanURL: res.ExplorerURL,
		Status:       string(res.Status),
		Message:      message,
	}
}
