// internal/models/inventory_log.go
package models

import "time"

// TimestampLayout is the ISO-8601 form stored on inventory logs. It sorts
// lexically in chronological order.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// InventoryLog is an append-only record of one stock change.
type InventoryLog struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"productId" gorm:"not null;index"`
	OldStock  int    `json:"oldStock" gorm:"not null"`
	NewStock  int    `json:"newStock" gorm:"not null"`
	ChangedBy string `json:"changedBy" gorm:"size:100"`
	Timestamp string `json:"timestamp" gorm:"size:30;not null;index"`
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
