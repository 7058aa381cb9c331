// internal/models/product.go
package models

import (
	"strings"
	"time"
)

type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	NameKey   string    `json:"-" gorm:"column:name_key;size:255;not null;default:''"`
	Unit      string    `json:"unit" gorm:"size:100"`
	Category  string    `json:"category" gorm:"size:100;index"`
	Brand     string    `json:"brand" gorm:"size:255"`
	Stock     int       `json:"stock" gorm:"not null;default:0"`
	Status    string    `json:"status" gorm:"size:50"`
	Image     string    `json:"image" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Logs []InventoryLog `json:"-" gorm:"foreignKey:ProductID"`
}

// NameKey is the lookup form of a product name. Uniqueness and search are
// case-insensitive through it for any script, not only ASCII.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
