package handler

import (
	"errors"
	"io"
	"strconv"

	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/service"
	"github.com/gin-gonic/gin"
)

// Order book exports stay well under this; anything bigger is not a
// spreadsheet we want in memory.
const maxUploadSizeBytes = 20 << 20

// SnapshotHandler handles snapshot uploads and listing.
type SnapshotHandler struct {
	importSvc   *service.ImportService
	trackingSvc *service.TrackingService
}

func NewSnapshotHandler(importSvc *service.ImportService, trackingSvc *service.TrackingService) *SnapshotHandler {
	return &SnapshotHandler{importSvc: importSvc, trackingSvc: trackingSvc}
}

// Upload ingests a new order book snapshot.
// POST /api/v1/track/snapshots  (multipart: file, label, threshold)
func (h *SnapshotHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		BadRequest(c, "dosya eksik: "+err.Error())
		return
	}
	defer file.Close()

	if header.Size > maxUploadSizeBytes {
		BadRequest(c, "dosya 20MB sınırını aşıyor")
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSizeBytes+1))
	if err != nil {
		InternalError(c, "dosya okunamadı: "+err.Error())
		return
	}

	threshold := 7
	if t := c.PostForm("threshold"); t != "" {
		if v, err := strconv.Atoi(t); err == nil && v >= 0 {
			threshold = v
		}
	}

	result, err := h.importSvc.ImportSnapshot(c.Request.Context(), GetUserID(c), c.PostForm("label"), data, threshold)
	if err != nil {
		BadRequest(c, "içe aktarma başarısız: "+err.Error())
		return
	}
	Created(c, result)
}

// List pages through stored snapshots.
// GET /api/v1/track/snapshots?page=1&page_size=20
func (h *SnapshotHandler) List(c *gin.Context) {
	page, pageSize := GetPagination(c)
	items, total, err := h.trackingSvc.ListSnapshots(c.Request.Context(), page, pageSize)
	if err != nil {
		InternalError(c, "snapshot listesi alınamadı: "+err.Error())
		return
	}

	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}

	Success(c, ListResponse{
		Items: items,
		Pagination: &Pagination{
			Page:       page,
			PageSize:   pageSize,
			Total:      int(total),
			TotalPages: totalPages,
		},
	})
}

// Get returns one snapshot header.
// GET /api/v1/track/snapshots/:id
func (h *SnapshotHandler) Get(c *gin.Context) {
	snap, err := h.trackingSvc.GetSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "snapshot bulunamadı")
			return
		}
		InternalError(c, err.Error())
		return
	}
	Success(c, snap)
}

// Delete removes a snapshot and all of its lines.
// DELETE /api/v1/track/snapshots/:id
func (h *SnapshotHandler) Delete(c *gin.Context) {
	if err := h.trackingSvc.DeleteSnapshot(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "snapshot bulunamadı")
			return
		}
		InternalError(c, "snapshot silinemedi: "+err.Error())
		return
	}
	Success(c, nil)
}
