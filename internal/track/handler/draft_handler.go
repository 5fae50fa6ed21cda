package handler

import (
	"github.com/alterians/Lojistik-Asistan/internal/shared/llm"
	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/gin-gonic/gin"
)

// DraftHandler fronts the email drafting collaborator. Failures here are
// retryable collaborator problems; the tracking pipeline itself never depends
// on these endpoints.
type DraftHandler struct {
	draftSvc    *service.DraftService
	trackingSvc *service.TrackingService
}

func NewDraftHandler(draftSvc *service.DraftService, trackingSvc *service.TrackingService) *DraftHandler {
	return &DraftHandler{draftSvc: draftSvc, trackingSvc: trackingSvc}
}

type draftRequest struct {
	SnapshotID   string `json:"snapshot_id" binding:"required"`
	SupplierName string `json:"supplier_name" binding:"required"`
	Instructions string `json:"instructions"`
}

// Draft drafts a reminder email for one supplier.
// POST /api/v1/track/drafts
func (h *DraftHandler) Draft(c *gin.Context) {
	var req draftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "geçersiz istek: "+err.Error())
		return
	}

	text, err := h.draftSvc.DraftEmail(c.Request.Context(), req.SnapshotID, req.SupplierName, req.Instructions)
	if err != nil {
		Error(c, 50200, "taslak oluşturulamadı, lütfen tekrar deneyin: "+err.Error())
		return
	}
	Success(c, gin.H{"draft": text})
}

type refineRequest struct {
	Draft       string `json:"draft" binding:"required"`
	Instruction string `json:"instruction" binding:"required"`
}

// Refine revises an existing draft.
// POST /api/v1/track/drafts/refine
func (h *DraftHandler) Refine(c *gin.Context) {
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "geçersiz istek: "+err.Error())
		return
	}

	text, err := h.draftSvc.RefineEmail(c.Request.Context(), req.Draft, req.Instruction)
	if err != nil {
		Error(c, 50200, "taslak düzenlenemedi, lütfen tekrar deneyin: "+err.Error())
		return
	}
	Success(c, gin.H{"draft": text})
}

type extractRequest struct {
	SnapshotID  string `json:"snapshot_id" binding:"required"`
	Instruction string `json:"instruction" binding:"required"`
	Image       string `json:"image"` // optional data URL
}

// ExtractUpdates proposes delivery date changes from free text and an
// optional image. Nothing is applied until the user confirms.
// POST /api/v1/track/updates/extract
func (h *DraftHandler) ExtractUpdates(c *gin.Context) {
	var req extractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "geçersiz istek: "+err.Error())
		return
	}

	result, err := h.draftSvc.ExtractUpdates(c.Request.Context(), req.SnapshotID, req.Instruction, req.Image)
	if err != nil {
		Error(c, 50200, "tarih çıkarımı başarısız, lütfen tekrar deneyin: "+err.Error())
		return
	}
	Success(c, result)
}

type applyUpdatesRequest struct {
	SnapshotID string           `json:"snapshot_id" binding:"required"`
	Updates    []llm.DateUpdate `json:"updates" binding:"required"`
}

// ApplyUpdates applies user-confirmed date updates through the manual edit
// path.
// POST /api/v1/track/updates/apply
func (h *DraftHandler) ApplyUpdates(c *gin.Context) {
	var req applyUpdatesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "geçersiz istek: "+err.Error())
		return
	}

	applied, skipped, err := h.trackingSvc.ApplyDateUpdates(c.Request.Context(), req.SnapshotID, req.Updates)
	if err != nil {
		InternalError(c, "güncellemeler uygulanamadı: "+err.Error())
		return
	}
	Success(c, gin.H{"applied": applied, "skipped": skipped})
}
