package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alterians/Lojistik-Asistan/internal/shared/llm"
	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"github.com/alterians/Lojistik-Asistan/internal/track/report"
	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
	"github.com/alterians/Lojistik-Asistan/internal/track/risk"
	"github.com/alterians/Lojistik-Asistan/internal/track/sheet"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const summaryCacheTTL = 5 * time.Minute

// TrackingService serves the dashboard view of a snapshot and owns every
// mutation of its lines: threshold changes, manual date and note edits, and
// confirmed AI date updates. All three go through the same
// recompute-before-store path.
type TrackingService struct {
	snapRepo *repository.SnapshotRepository
	lineRepo *repository.OrderLineRepository
	cache    *redis.Client
	logger   *zap.Logger
}

func NewTrackingService(repos *repository.Repositories, cache *redis.Client, logger *zap.Logger) *TrackingService {
	return &TrackingService{
		snapRepo: repos.Snapshot,
		lineRepo: repos.Line,
		cache:    cache,
		logger:   logger,
	}
}

// GetSnapshot returns a snapshot header.
func (s *TrackingService) GetSnapshot(ctx context.Context, id string) (*entity.Snapshot, error) {
	return s.snapRepo.FindByID(ctx, id)
}

// ListSnapshots pages through stored snapshots, newest first.
func (s *TrackingService) ListSnapshots(ctx context.Context, page, pageSize int) ([]entity.Snapshot, int64, error) {
	return s.snapRepo.FindAll(ctx, page, pageSize)
}

// ListLines returns every line of a snapshot.
func (s *TrackingService) ListLines(ctx context.Context, snapshotID string) ([]entity.OrderLine, error) {
	return s.lineRepo.ListBySnapshot(ctx, snapshotID)
}

// VendorSummaries rebuilds the per-vendor dashboard projection. The result is
// cached briefly in redis; any cache trouble silently degrades to a fresh
// aggregation.
func (s *TrackingService) VendorSummaries(ctx context.Context, snapshotID string) ([]report.VendorSummary, error) {
	key := summaryCacheKey(snapshotID)
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, key).Result(); err == nil {
			var cached []report.VendorSummary
			if json.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	lines, err := s.lineRepo.ListBySnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	summaries := report.AggregateByVendor(lines)

	if s.cache != nil {
		if raw, err := json.Marshal(summaries); err == nil {
			if err := s.cache.Set(ctx, key, raw, summaryCacheTTL).Err(); err != nil {
				s.logger.Debug("summary cache write failed", zap.Error(err))
			}
		}
	}
	return summaries, nil
}

// SetThreshold changes a snapshot's warning threshold and reclassifies every
// line of the snapshot in one total pass. Days-remaining values are left
// untouched; only buckets change.
func (s *TrackingService) SetThreshold(ctx context.Context, snapshotID string, threshold int) ([]entity.OrderLine, error) {
	if threshold < 0 {
		return nil, fmt.Errorf("eşik değeri negatif olamaz: %d", threshold)
	}
	if err := s.snapRepo.UpdateThreshold(ctx, snapshotID, threshold); err != nil {
		return nil, err
	}

	lines, err := s.lineRepo.ListBySnapshot(ctx, snapshotID)
	if err != nil {
		return nil, err
	}
	risk.ReclassifyAll(lines, threshold)
	if err := s.lineRepo.SaveAll(ctx, lines); err != nil {
		return nil, err
	}
	s.invalidateSummary(ctx, snapshotID)
	return lines, nil
}

// EditLineRequest is a manual edit of one line. Each field is applied only
// when its Set flag is true, so an explicit empty value can clear an earlier
// override or note while an omitted field leaves the line as-is.
type EditLineRequest struct {
	RevisedDate    string `json:"revised_date"`
	RevisedDateSet bool   `json:"revised_date_set"`
	Note           string `json:"note"`
	NoteSet        bool   `json:"note_set"`
}

// EditLine applies a manual date override and/or note to a line and
// recomputes days-remaining and bucket from the new effective date before the
// record is stored or observed. The revised date is normalized to display
// form when it parses; unparseable overrides are stored verbatim and the line
// keeps its literal days value. An explicit empty revised date removes the
// override and the promised date becomes effective again.
func (s *TrackingService) EditLine(ctx context.Context, lineID string, req EditLineRequest) (*entity.OrderLine, error) {
	line, err := s.lineRepo.FindByID(ctx, lineID)
	if err != nil {
		return nil, err
	}
	snap, err := s.snapRepo.FindByID(ctx, line.SnapshotID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updated := *line
	if req.RevisedDateSet {
		switch {
		case req.RevisedDate == "":
			updated.RevisedDate = ""
		default:
			if dv := sheet.ParseDate(req.RevisedDate, now); dv.Valid {
				updated.RevisedDate = dv.Display
			} else {
				updated.RevisedDate = req.RevisedDate
				s.logger.Warn("unparseable revised date on manual edit",
					zap.String("line_id", lineID),
					zap.String("raw", req.RevisedDate),
				)
			}
		}
	}
	if req.NoteSet {
		updated.Note = req.Note
	}

	sheet.Refresh(&updated, snap.Threshold, now)
	if err := s.lineRepo.Save(ctx, &updated); err != nil {
		return nil, err
	}
	s.invalidateSummary(ctx, line.SnapshotID)
	return &updated, nil
}

// ApplyDateUpdates applies user-confirmed AI-extracted date changes through
// the same path as manual edits. Unknown keys are skipped and counted;
// nothing about a missing line stops the rest of the batch.
func (s *TrackingService) ApplyDateUpdates(ctx context.Context, snapshotID string, updates []llm.DateUpdate) (applied, skipped int, err error) {
	for _, u := range updates {
		line, ferr := s.lineRepo.FindByKey(ctx, snapshotID, u.OrderNo, u.ItemNo)
		if ferr != nil {
			skipped++
			continue
		}
		if _, eerr := s.EditLine(ctx, line.ID, EditLineRequest{RevisedDate: u.NewDate, RevisedDateSet: true}); eerr != nil {
			return applied, skipped, eerr
		}
		applied++
	}
	return applied, skipped, nil
}

// DeleteSnapshot removes a snapshot with its lines and drops the cached
// dashboard projection.
func (s *TrackingService) DeleteSnapshot(ctx context.Context, snapshotID string) error {
	if _, err := s.snapRepo.FindByID(ctx, snapshotID); err != nil {
		return err
	}
	if err := s.snapRepo.Delete(ctx, snapshotID); err != nil {
		return err
	}
	s.invalidateSummary(ctx, snapshotID)
	return nil
}

func (s *TrackingService) invalidateSummary(ctx context.Context, snapshotID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, summaryCacheKey(snapshotID)).Err(); err != nil {
		s.logger.Debug("summary cache invalidation failed", zap.Error(err))
	}
}

func summaryCacheKey(snapshotID string) string {
	return "track:summary:" + snapshotID
}
