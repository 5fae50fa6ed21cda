package entity

import "time"

// Risk buckets for an order line's delivery status.
const (
	RiskCritical = "critical"
	RiskWarning  = "warning"
	RiskOK       = "ok"
)

// UnknownSupplier is the sentinel written by the row mapper when no supplier
// name could be resolved. Rows carrying it are dropped before they reach the
// line set. A real supplier whose name literally equals the sentinel would be
// dropped too; this mirrors the source data contract and is accepted as a
// known limitation.
const UnknownSupplier = "Bilinmeyen Tedarikçi"

// OrderLine is one open purchase-order item with delivery tracking fields.
// Every field is a flat primitive: the spreadsheet export and the remote
// store both require records without nested objects.
type OrderLine struct {
	ID         string `json:"id" gorm:"primaryKey;size:32"`
	SnapshotID string `json:"snapshot_id" gorm:"size:32;not null;index"`

	OrderNo string `json:"order_no" gorm:"size:32;not null;index"`
	ItemNo  string `json:"item_no" gorm:"size:32"`

	SupplierCode string `json:"supplier_code" gorm:"size:32;index"`
	SupplierName string `json:"supplier_name" gorm:"size:200"`

	MaterialCode string  `json:"material_code" gorm:"size:64"`
	MaterialDesc string  `json:"material_desc" gorm:"size:500"`
	OrderedQty   float64 `json:"ordered_qty" gorm:"type:decimal(12,3);default:0"`
	OpenQty      float64 `json:"open_qty" gorm:"type:decimal(12,3);default:0"`
	Unit         string  `json:"unit" gorm:"size:20"`

	// Dates are kept as DD.MM.YYYY display strings. RevisedDate is a manual
	// override; FirstDate is the first promise ever given by the supplier.
	DeliveryDate string `json:"delivery_date" gorm:"size:20"`
	RevisedDate  string `json:"revised_date" gorm:"size:20"`
	FirstDate    string `json:"first_date" gorm:"size:20"`

	Requester string `json:"requester" gorm:"size:100"`
	Creator   string `json:"creator" gorm:"size:100"`
	Note      string `json:"note" gorm:"type:text"`

	// Derived fields. DaysRemaining is always recomputed from the effective
	// date before classification or display; it must never be read stale.
	DaysRemaining int    `json:"days_remaining"`
	RiskBucket    string `json:"risk_bucket" gorm:"size:10"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (OrderLine) TableName() string {
	return "track_order_lines"
}

// EffectiveDate returns the revised delivery date when one has been set,
// otherwise the originally promised date.
func (l *OrderLine) EffectiveDate() string {
	if l.RevisedDate != "" {
		return l.RevisedDate
	}
	return l.DeliveryDate
}

// Key is the identity of a line across snapshots: the order number plus the
// item number, falling back to the material code when the item number is
// absent.
func (l *OrderLine) Key() string {
	sub := l.ItemNo
	if sub == "" {
		sub = l.MaterialCode
	}
	return l.OrderNo + "|" + sub
}
