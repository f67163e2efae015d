package handler

import (
	"errors"
	"net/http"
	"time"

	"private-tips/internal/adapter/http/dto"
	"private-tips/internal/adapter/http/middleware"
	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"
	"private-tips/pkg/response"

	"github.com/gin-gonic/gin"
)

// TipHandler exposes tip encryption and the tipping workflow.
type TipHandler struct {
	tips ports.TipService
	now  func() time.Time
}

// NewTipHandler creates a new TipHandler.
func NewTipHandler(tips ports.TipService) *TipHandler {
	return &TipHandler{tips: tips, now: time.Now}
}

// EncryptTip handles POST /api/encrypt-tip.
func (h *TipHandler) EncryptTip(c *gin.Context) {
	var req dto.EncryptTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	res, err := h.tips.EncryptTip(c.Request.Context(), domain.TipRequest{
		Amount:      float64(req.Amount),
		FromAddress: req.From,
		ToAddress:   req.To,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxActor, req.From)
	c.Set(middleware.CtxResourceID, res.EncryptionID)
	response.OK(c, dto.EncryptTipResponse{Ciphertext: res.Ciphertext, EncryptionID: res.EncryptionID})
}

// Send handles POST /api/tips.
func (h *TipHandler) Send(c *gin.Context) {
	var req dto.SendTipRequest
	if err := dto.BindSanitized(c, &req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	rec, err := h.tips.Send(c.Request.Context(), ports.SendTipInput{
		KolID:       req.KolID,
		Amount:      float64(req.Amount),
		FromAddress: req.From,
	})
	c.Set(middleware.CtxActor, req.From)
	h.writeTip(c, rec, err)
}

// Get handles GET /api/tips/:encryptionId.
func (h *TipHandler) Get(c *gin.Context) {
	rec, err := h.tips.Get(c.Request.Context(), c.Param("encryptionId"))
	h.writeTip(c, rec, err)
}

// Confirm handles POST /api/tips/:encryptionId/confirm for wallet-sent tips.
func (h *TipHandler) Confirm(c *gin.Context) {
	var req dto.ConfirmTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("txHash is required"))
		return
	}

	rec, err := h.tips.Confirm(c.Request.Context(), c.Param("encryptionId"), req.TxHash)
	h.writeTip(c, rec, err)
}

// Fail handles POST /api/tips/:encryptionId/fail with the wallet's error text.
func (h *TipHandler) Fail(c *gin.Context) {
	var req dto.FailTipRequest
	if err := dto.BindSanitized(c, &req); err != nil {
		response.Error(c, apperror.Validation("error is required"))
		return
	}

	rec, err := h.tips.ReportFailure(c.Request.Context(), c.Param("encryptionId"), req.Error)
	h.writeTip(c, rec, err)
}

// writeTip renders a record. A workflow error carries its own status with
// the failed record as body; an in-flight record is 202.
func (h *TipHandler) writeTip(c *gin.Context, rec *domain.TipRecord, err error) {
	if rec == nil {
		if err == nil {
			err = apperror.ErrNotFound("Tip")
		}
		response.Error(c, err)
		return
	}
	if _, ok := c.Get(middleware.CtxActor); !ok {
		c.Set(middleware.CtxActor, rec.FromAddress)
	}
	c.Set(middleware.CtxResourceID, rec.EncryptionID)

	view := toTipResponse(rec, h.now())
	if err != nil {
		status := http.StatusInternalServerError
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status = appErr.HTTPStatus
			view.ErrorCode = appErr.Code
			view.ErrorKind = string(appErr.Kind)
		}
		if view.Message == "" {
			view.Message = apperror.Humanize(err)
		}
		c.JSON(status, view)
		return
	}

	if inFlight(rec) {
		response.Accepted(c, view)
		return
	}
	response.OK(c, view)
}

func inFlight(rec *domain.TipRecord) bool {
	return rec.State == domain.TipStateConfirming ||
		(rec.State == domain.TipStateRelaying && rec.Strategy == domain.StrategyDirect)
}

func toTipResponse(rec *domain.TipRecord, now time.Time) dto.TipResponse {
	resp := dto.TipResponse{
		EncryptionID:    rec.EncryptionID,
		KolID:           rec.KolID,
		From:            rec.FromAddress,
		To:              rec.ToAddress,
		Strategy:        string(rec.Strategy),
		State:           string(rec.State),
		Ciphertext:      rec.Ciphertext,
		ValueWei:        rec.ValueWei,
		ContractAddress: rec.ContractAddress,
		TxHash:          rec.TxHash,
		BlockNumber:     dto.FormatUint(rec.BlockNumber),
		GasUsed:         dto.FormatUint(rec.GasUsed),
		ExplorerURL:     rec.ExplorerURL,
		Message:         rec.StatusMessage(now),
		ErrorKind:       string(rec.ErrorKind),
		Transitions:     rec.Transitions,
		CreatedAt:       dto.FormatTime(rec.CreatedAt),
		UpdatedAt:       dto.FormatTime(rec.UpdatedAt),
	}
	if rec.NoticeActive(now) {
		at := dto.FormatTime(*rec.NoticeExpiresAt)
		resp.NoticeExpiresAt = &at
	}
	return resp
}
