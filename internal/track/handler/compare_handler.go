package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/gin-gonic/gin"
)

// CompareHandler serves snapshot comparison reports.
type CompareHandler struct {
	svc *service.CompareService
}

func NewCompareHandler(svc *service.CompareService) *CompareHandler {
	return &CompareHandler{svc: svc}
}

// Compare diffs two snapshots.
// GET /api/v1/track/compare?old=<id>&new=<id>
func (h *CompareHandler) Compare(c *gin.Context) {
	oldID, newID := c.Query("old"), c.Query("new")
	if oldID == "" || newID == "" {
		BadRequest(c, "old ve new snapshot kimlikleri zorunlu")
		return
	}

	rep, err := h.svc.Compare(c.Request.Context(), oldID, newID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "snapshot bulunamadı")
			return
		}
		InternalError(c, "karşılaştırma başarısız: "+err.Error())
		return
	}
	Success(c, rep)
}

// Export streams the comparison report as a workbook.
// GET /api/v1/track/compare/export?old=<id>&new=<id>
func (h *CompareHandler) Export(c *gin.Context) {
	oldID, newID := c.Query("old"), c.Query("new")
	if oldID == "" || newID == "" {
		BadRequest(c, "old ve new snapshot kimlikleri zorunlu")
		return
	}

	f, filename, err := h.svc.ExportComparison(c.Request.Context(), oldID, newID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "snapshot bulunamadı")
			return
		}
		InternalError(c, "dışa aktarma başarısız: "+err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.Status(http.StatusInternalServerError)
	}
}
