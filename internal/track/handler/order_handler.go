package handler

import (
	"errors"

	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/gin-gonic/gin"
)

// OrderHandler serves order lines, vendor summaries and line mutations.
type OrderHandler struct {
	svc *service.TrackingService
}

func NewOrderHandler(svc *service.TrackingService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// ListLines returns every line of a snapshot.
// GET /api/v1/track/snapshots/:id/lines
func (h *OrderHandler) ListLines(c *gin.Context) {
	lines, err := h.svc.ListLines(c.Request.Context(), c.Param("id"))
	if err != nil {
		InternalError(c, "kalemler alınamadı: "+err.Error())
		return
	}
	Success(c, lines)
}

// VendorSummaries returns the per-vendor dashboard rollup.
// GET /api/v1/track/snapshots/:id/vendors
func (h *OrderHandler) VendorSummaries(c *gin.Context) {
	summaries, err := h.svc.VendorSummaries(c.Request.Context(), c.Param("id"))
	if err != nil {
		InternalError(c, "tedarikçi özeti alınamadı: "+err.Error())
		return
	}
	Success(c, summaries)
}

type setThresholdRequest struct {
	Threshold int `json:"threshold" binding:"min=0"`
}

// SetThreshold changes the warning threshold and reclassifies the snapshot.
// PUT /api/v1/track/snapshots/:id/threshold
func (h *OrderHandler) SetThreshold(c *gin.Context) {
	var req setThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "geçersiz istek: "+err.Error())
		return
	}

	lines, err := h.svc.SetThreshold(c.Request.Context(), c.Param("id"), req.Threshold)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "snapshot bulunamadı")
			return
		}
		InternalError(c, "eşik güncellenemedi: "+err.Error())
		return
	}
	Success(c, lines)
}

type editLineRequest struct {
	RevisedDate *string `json:"revised_date"`
	Note        *string `json:"note"`
}

// EditLine applies a manual date override and/or note to one line.
// PUT /api/v1/track/lines/:lineId
func (h *OrderHandler) EditLine(c *gin.Context) {
	var req editLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "geçersiz istek: "+err.Error())
		return
	}

	edit := service.EditLineRequest{}
	if req.RevisedDate != nil {
		edit.RevisedDate = *req.RevisedDate
		edit.RevisedDateSet = true
	}
	if req.Note != nil {
		edit.Note = *req.Note
		edit.NoteSet = true
	}

	line, err := h.svc.EditLine(c.Request.Context(), c.Param("lineId"), edit)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "kalem bulunamadı")
			return
		}
		InternalError(c, "kalem güncellenemedi: "+err.Error())
		return
	}
	Success(c, line)
}
