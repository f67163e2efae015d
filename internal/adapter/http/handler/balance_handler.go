package handler

import (
	"time"

	"private-tips/internal/adapter/http/dto"
	"private-tips/internal/adapter/http/middleware"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"
	"private-tips/pkg/response"

	"github.com/gin-gonic/gin"
)

// BalanceHandler serves per-KOL encrypted balances.
type BalanceHandler struct {
	balances ports.BalanceService
	now      func() time.Time
}

// NewBalanceHandler creates a new BalanceHandler.
func NewBalanceHandler(balances ports.BalanceService) *BalanceHandler {
	return &BalanceHandler{balances: balances, now: time.Now}
}

// Get handles GET /api/kol-balance?kolId=. An unknown KOL reads as a null
// balance stamped with the current time.
func (h *BalanceHandler) Get(c *gin.Context) {
	kolID := c.Query("kolId")
	if kolID == "" {
		response.Error(c, apperror.Validation("Missing kolId parameter"))
		return
	}

	bal, err := h.balances.Get(c.Request.Context(), kolID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if bal == nil {
		response.OK(c, dto.BalanceResponse{EncryptedBalance: nil, LastUpdated: dto.FormatTime(h.now())})
		return
	}
	response.OK(c, dto.BalanceResponse{EncryptedBalance: bal.Blob, LastUpdated: dto.FormatTime(bal.LastUpdated)})
}

// Set handles POST /api/kol-balance. The last writer wins.
func (h *BalanceHandler) Set(c *gin.Context) {
	var req dto.SetBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	if _, err := h.balances.Set(c.Request.Context(), req.KolID, req.EncryptedBalance); err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, req.KolID)
	response.OK(c, gin.H{"success": true})
}
