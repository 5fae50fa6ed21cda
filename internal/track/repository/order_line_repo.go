package repository

import (
	"context"
	"errors"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"gorm.io/gorm"
)

// OrderLineRepository persists the lines of a snapshot.
type OrderLineRepository struct {
	db *gorm.DB
}

func NewOrderLineRepository(db *gorm.DB) *OrderLineRepository {
	return &OrderLineRepository{db: db}
}

// ListBySnapshot returns every line of a snapshot in a stable order.
func (r *OrderLineRepository) ListBySnapshot(ctx context.Context, snapshotID string) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.db.WithContext(ctx).
		Where("snapshot_id = ?", snapshotID).
		Order("order_no, item_no, material_code").
		Find(&lines).Error
	return lines, err
}

// ListBySupplierName returns a snapshot's lines for one supplier display name.
func (r *OrderLineRepository) ListBySupplierName(ctx context.Context, snapshotID, supplierName string) ([]entity.OrderLine, error) {
	var lines []entity.OrderLine
	err := r.db.WithContext(ctx).
		Where("snapshot_id = ? AND supplier_name = ?", snapshotID, supplierName).
		Order("order_no, item_no, material_code").
		Find(&lines).Error
	return lines, err
}

// FindByID loads a single line.
func (r *OrderLineRepository) FindByID(ctx context.Context, id string) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// FindByKey loads a line of a snapshot by its identity key components. The
// second component follows entity.Key() semantics: it is matched against the
// item number first, and against the material code of item-less lines when no
// item number matches, so keys built from the material-code fallback resolve
// to the same line.
func (r *OrderLineRepository) FindByKey(ctx context.Context, snapshotID, orderNo, sub string) (*entity.OrderLine, error) {
	var line entity.OrderLine
	err := r.db.WithContext(ctx).
		Where("snapshot_id = ? AND order_no = ? AND item_no = ?", snapshotID, orderNo, sub).
		First(&line).Error
	if errors.Is(err, gorm.ErrRecordNotFound) && sub != "" {
		err = r.db.WithContext(ctx).
			Where("snapshot_id = ? AND order_no = ? AND item_no = '' AND material_code = ?", snapshotID, orderNo, sub).
			First(&line).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &line, nil
}

// Save stores a fully recomputed line record.
func (r *OrderLineRepository) Save(ctx context.Context, line *entity.OrderLine) error {
	return r.db.WithContext(ctx).Save(line).Error
}

// SaveAll stores a batch of recomputed lines in one transaction. Used by the
// total reclassification pass after a threshold change.
func (r *OrderLineRepository) SaveAll(ctx context.Context, lines []entity.OrderLine) error {
	if len(lines) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range lines {
			if err := tx.Save(&lines[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
