package repository

import (
	"context"
	"errors"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"gorm.io/gorm"
)

// ContactRepository persists supplier contact metadata.
type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// ReplaceAll swaps the whole contact list for the one from the latest upload.
// Contacts are reference data; the newest sheet wins.
func (r *ContactRepository) ReplaceAll(ctx context.Context, contacts []entity.SupplierContact) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&entity.SupplierContact{}).Error; err != nil {
			return err
		}
		if len(contacts) == 0 {
			return nil
		}
		return tx.CreateInBatches(contacts, 200).Error
	})
}

// FindAll lists contacts ordered by supplier code.
func (r *ContactRepository) FindAll(ctx context.Context) ([]entity.SupplierContact, error) {
	var contacts []entity.SupplierContact
	err := r.db.WithContext(ctx).Order("supplier_code").Find(&contacts).Error
	return contacts, err
}

// FindByCode looks a contact up by supplier code. Absence is normal for most
// suppliers and reported as ErrNotFound.
func (r *ContactRepository) FindByCode(ctx context.Context, code string) (*entity.SupplierContact, error) {
	var contact entity.SupplierContact
	err := r.db.WithContext(ctx).Where("supplier_code = ?", code).First(&contact).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}
