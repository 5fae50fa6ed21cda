package repository

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repositories is the collection used by the tracking services.
type Repositories struct {
	Snapshot *SnapshotRepository
	Line     *OrderLineRepository
	Contact  *ContactRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Snapshot: NewSnapshotRepository(db),
		Line:     NewOrderLineRepository(db),
		Contact:  NewContactRepository(db),
	}
}
