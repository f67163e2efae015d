package handler

import (
	"private-tips/internal/adapter/http/dto"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"
	"private-tips/pkg/response"

	"github.com/gin-gonic/gin"
)

// KolHandler serves the read-only creator directory.
type KolHandler struct {
	kols ports.KolDirectory
}

// NewKolHandler creates a new KolHandler.
func NewKolHandler(kols ports.KolDirectory) *KolHandler {
	return &KolHandler{kols: kols}
}

// List handles GET /api/kols.
func (h *KolHandler) List(c *gin.Context) {
	kols := h.kols.List(c.Request.Context())
	response.OK(c, dto.KolListResponse{Kols: kols, Total: len(kols)})
}

// Get handles GET /api/kols/:id.
func (h *KolHandler) Get(c *gin.Context) {
	kol := h.kols.Get(c.Request.Context(), c.Param("id"))
	if kol == nil {
		response.Error(c, apperror.ErrNotFound("KOL"))
		return
	}
	response.OK(c, kol)
}
