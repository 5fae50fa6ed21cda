package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alterians/Lojistik-Asistan/internal/track/report"
	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/redis/go-redis/v9"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

const compareCacheTTL = 10 * time.Minute

// CompareService diffs two stored snapshots of the order book.
type CompareService struct {
	snapRepo *repository.SnapshotRepository
	lineRepo *repository.OrderLineRepository
	cache    *redis.Client
	logger   *zap.Logger
}

func NewCompareService(repos *repository.Repositories, cache *redis.Client, logger *zap.Logger) *CompareService {
	return &CompareService{
		snapRepo: repos.Snapshot,
		lineRepo: repos.Line,
		cache:    cache,
		logger:   logger,
	}
}

// Compare loads both snapshots' lines and runs the diff engine. Reports for
// a given snapshot pair are cached; a cache miss or failure just recomputes.
func (s *CompareService) Compare(ctx context.Context, oldID, newID string) (*report.ComparisonReport, error) {
	if _, err := s.snapRepo.FindByID(ctx, oldID); err != nil {
		return nil, fmt.Errorf("eski snapshot: %w", err)
	}
	if _, err := s.snapRepo.FindByID(ctx, newID); err != nil {
		return nil, fmt.Errorf("yeni snapshot: %w", err)
	}

	key := fmt.Sprintf("track:compare:%s:%s", oldID, newID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached report.ComparisonReport
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return &cached, nil
			}
		}
	}

	oldLines, err := s.lineRepo.ListBySnapshot(ctx, oldID)
	if err != nil {
		return nil, err
	}
	newLines, err := s.lineRepo.ListBySnapshot(ctx, newID)
	if err != nil {
		return nil, err
	}

	rep := report.Compare(oldLines, newLines)

	if s.cache != nil {
		if raw, err := json.Marshal(rep); err == nil {
			if err := s.cache.Set(ctx, key, raw, compareCacheTTL).Err(); err != nil {
				s.logger.Debug("compare cache write failed", zap.Error(err))
			}
		}
	}
	return &rep, nil
}

var compareExportHeaders = []string{
	"Tedarikçi Kodu", "Tedarikçi", "Değişiklik", "Sipariş No", "Kalem",
	"Malzeme", "Eski Termin", "Yeni Termin",
}

// ExportComparison renders a comparison report as a workbook for download.
func (s *CompareService) ExportComparison(ctx context.Context, oldID, newID string) (*excelize.File, string, error) {
	rep, err := s.Compare(ctx, oldID, newID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	sheetName := "Karşılaştırma"
	f.SetSheetName("Sheet1", sheetName)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range compareExportHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheetName, cell, h)
		f.SetCellStyle(sheetName, cell, cell, boldStyle)
	}

	row := 2
	for _, vendor := range rep.Vendors {
		for _, item := range vendor.Items {
			f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), vendor.SupplierCode)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), vendor.SupplierName)
			f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.Kind)
			f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.Line.OrderNo)
			f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.Line.ItemNo)
			f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.Line.MaterialCode)
			f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.OldDate)
			f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), item.NewDate)
			row++
		}
	}

	filename := fmt.Sprintf("karsilastirma_%s_%s.xlsx", shortID(oldID), shortID(newID))
	return f, filename, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
