package entity

import "time"

// SupplierContact is representative metadata loosely joined to order lines by
// supplier code. Contacts come from an optional second sheet of the upload;
// their absence never blocks order processing.
type SupplierContact struct {
	ID           string `json:"id" gorm:"primaryKey;size:32"`
	SupplierCode string `json:"supplier_code" gorm:"size:32;uniqueIndex;not null"`
	SupplierName string `json:"supplier_name" gorm:"size:200"`

	RepName  string `json:"rep_name" gorm:"size:100"`
	RepPhone string `json:"rep_phone" gorm:"size:40"`
	RepEmail string `json:"rep_email" gorm:"size:200"`

	Scope      string `json:"scope" gorm:"size:200"`
	Region     string `json:"region" gorm:"size:100"`
	Specialist string `json:"specialist" gorm:"size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SupplierContact) TableName() string {
	return "track_supplier_contacts"
}
