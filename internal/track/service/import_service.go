package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/sheet"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// ImportService turns an uploaded workbook into a persisted snapshot. The
// original file is archived to object storage best effort; a storage failure
// is logged and never blocks the import itself.
type ImportService struct {
	snapRepo    *repository.SnapshotRepository
	lineRepo    *repository.OrderLineRepository
	contactRepo *repository.ContactRepository
	storage     *minio.Client
	bucket      string
	logger      *zap.Logger
}

func NewImportService(repos *repository.Repositories, storage *minio.Client, bucket string, logger *zap.Logger) *ImportService {
	return &ImportService{
		snapRepo:    repos.Snapshot,
		lineRepo:    repos.Line,
		contactRepo: repos.Contact,
		storage:     storage,
		bucket:      bucket,
		logger:      logger,
	}
}

// ImportResult is what the upload handler returns to the dashboard.
type ImportResult struct {
	Snapshot *entity.Snapshot   `json:"snapshot"`
	Lines    []entity.OrderLine `json:"lines"`
	Contacts int                `json:"contacts"`
}

// ImportSnapshot parses the workbook, maps the first sheet into classified
// order lines, reads the optional contact sheet and persists everything as a
// new snapshot. An unreadable workbook is the only error the parsing side can
// produce; an order book that maps to zero lines is returned as an empty
// snapshot and left to the caller to judge.
func (s *ImportService) ImportSnapshot(ctx context.Context, userID, label string, data []byte, threshold int) (*ImportResult, error) {
	wb, err := sheet.OpenWorkbook(data)
	if err != nil {
		return nil, fmt.Errorf("workbook açılamadı: %w", err)
	}
	defer wb.Close()

	now := time.Now()
	res := sheet.MapRows(wb.Grid(0), threshold, now)

	if res.BadDates > 0 {
		s.logger.Warn("unparseable delivery dates in upload",
			zap.Int("count", res.BadDates),
			zap.String("label", label),
		)
	}

	snap := &entity.Snapshot{
		ID:          uuid.New().String()[:32],
		Label:       label,
		RowCount:    len(res.Lines),
		DroppedRows: res.Dropped,
		Threshold:   threshold,
		UploadedBy:  userID,
	}
	if snap.Label == "" {
		snap.Label = now.Format("02.01.2006 15:04")
	}

	snap.ObjectKey = s.archiveWorkbook(ctx, snap.ID, data)

	lines := res.Lines
	for i := range lines {
		lines[i].ID = uuid.New().String()[:32]
		lines[i].SnapshotID = snap.ID
	}

	if err := s.snapRepo.CreateWithLines(ctx, snap, lines); err != nil {
		return nil, fmt.Errorf("snapshot kaydedilemedi: %w", err)
	}

	contacts := 0
	if wb.SheetCount() > 1 {
		contacts = s.importContacts(ctx, wb.Grid(1))
	}

	s.logger.Info("snapshot imported",
		zap.String("snapshot_id", snap.ID),
		zap.Int("lines", len(lines)),
		zap.Int("dropped", res.Dropped),
		zap.Int("contacts", contacts),
	)

	return &ImportResult{Snapshot: snap, Lines: lines, Contacts: contacts}, nil
}

// archiveWorkbook stores the original upload and returns its object key, or
// an empty key when storage is unavailable.
func (s *ImportService) archiveWorkbook(ctx context.Context, snapshotID string, data []byte) string {
	if s.storage == nil {
		return ""
	}
	key := fmt.Sprintf("snapshots/%s.xlsx", snapshotID)
	_, err := s.storage.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	})
	if err != nil {
		s.logger.Warn("workbook archive failed", zap.Error(err), zap.String("snapshot_id", snapshotID))
		return ""
	}
	return key
}

// importContacts replaces the contact list from the optional second sheet.
// Zero contacts is not an error; a persistence failure is logged and the
// import continues without contacts.
func (s *ImportService) importContacts(ctx context.Context, grid [][]string) int {
	contacts := sheet.MapContacts(grid)
	for i := range contacts {
		contacts[i].ID = uuid.New().String()[:32]
	}
	if len(contacts) == 0 {
		return 0
	}
	if err := s.contactRepo.ReplaceAll(ctx, contacts); err != nil {
		s.logger.Warn("contact sheet import failed", zap.Error(err))
		return 0
	}
	return len(contacts)
}
