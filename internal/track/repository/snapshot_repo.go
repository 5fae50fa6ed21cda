package repository

import (
	"context"
	"errors"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"gorm.io/gorm"
)

// SnapshotRepository persists order book snapshots.
type SnapshotRepository struct {
	db *gorm.DB
}

func NewSnapshotRepository(db *gorm.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// CreateWithLines stores a snapshot and its lines in one transaction.
func (r *SnapshotRepository) CreateWithLines(ctx context.Context, snap *entity.Snapshot, lines []entity.OrderLine) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(snap).Error; err != nil {
			return err
		}
		if len(lines) == 0 {
			return nil
		}
		return tx.CreateInBatches(lines, 200).Error
	})
}

// FindByID loads a snapshot header without its lines.
func (r *SnapshotRepository) FindByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	var snap entity.Snapshot
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&snap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &snap, nil
}

// FindAll lists snapshots newest first.
func (r *SnapshotRepository) FindAll(ctx context.Context, page, pageSize int) ([]entity.Snapshot, int64, error) {
	var items []entity.Snapshot
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Snapshot{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&items).Error

	return items, total, err
}

// UpdateThreshold stores the snapshot's new warning threshold.
func (r *SnapshotRepository) UpdateThreshold(ctx context.Context, id string, threshold int) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Snapshot{}).
		Where("id = ?", id).
		Update("threshold", threshold)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a snapshot and its lines.
func (r *SnapshotRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("snapshot_id = ?", id).Delete(&entity.OrderLine{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&entity.Snapshot{}).Error
	})
}
