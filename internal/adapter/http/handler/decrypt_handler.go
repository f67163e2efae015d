package handler

import (
	"private-tips/internal/adapter/http/dto"
	"private-tips/internal/adapter/http/middleware"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"
	"private-tips/pkg/response"

	"github.com/gin-gonic/gin"
)

// DecryptHandler serves signed user decryption and public decryption of
// ciphertext handles.
type DecryptHandler struct {
	svc ports.DecryptService
}

// NewDecryptHandler creates a new DecryptHandler.
func NewDecryptHandler(svc ports.DecryptService) *DecryptHandler {
	return &DecryptHandler{svc: svc}
}

// UserDecrypt handles POST /api/decrypt.
func (h *DecryptHandler) UserDecrypt(c *gin.Context) {
	var req dto.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	res, err := h.svc.UserDecrypt(c.Request.Context(), ports.UserDecryptRequest{
		Handle:            req.Handle,
		ContractAddress:   req.ContractAddress,
		UserAddress:       req.UserAddress,
		PublicKey:         req.PublicKey,
		ContractAddresses: req.ContractAddresses,
		StartTimestamp:    req.StartTimestamp,
		DurationDays:      req.DurationDays,
		Signature:         req.Signature,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxActor, req.UserAddress)
	c.Set(middleware.CtxResourceID, req.Handle)
	response.OK(c, dto.DecryptResponse{Handle: res.Handle, Value: res.Value})
}

// PublicDecrypt handles POST /api/public-decrypt.
func (h *DecryptHandler) PublicDecrypt(c *gin.Context) {
	var req dto.PublicDecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation("Invalid request body: "+err.Error()))
		return
	}

	res, err := h.svc.PublicDecrypt(c.Request.Context(), ports.PublicDecryptRequest{
		Handle:          req.Handle,
		ContractAddress: req.ContractAddress,
		UserAddress:     req.UserAddress,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, req.Handle)
	response.OK(c, dto.DecryptResponse{Handle: res.Handle, Value: res.Value})
}
