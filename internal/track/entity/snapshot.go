package entity

import "time"

// Snapshot is one uploaded capture of the open order book. Lines are diffed
// between two snapshots of the same book; within a session lines are only
// replaced by loading a new snapshot.
type Snapshot struct {
	ID          string `json:"id" gorm:"primaryKey;size:32"`
	Label       string `json:"label" gorm:"size:200"`
	ObjectKey   string `json:"object_key" gorm:"size:512"` // original workbook in object storage
	RowCount    int    `json:"row_count" gorm:"default:0"`
	DroppedRows int    `json:"dropped_rows" gorm:"default:0"`

	// Warning threshold (days) in effect for this snapshot's buckets. Changing
	// it triggers a full reclassification of the snapshot's lines.
	Threshold int `json:"threshold" gorm:"default:7"`

	UploadedBy string    `json:"uploaded_by" gorm:"size:32"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Lines []OrderLine `json:"lines,omitempty" gorm:"foreignKey:SnapshotID"`
}

func (Snapshot) TableName() string {
	return "track_snapshots"
}
