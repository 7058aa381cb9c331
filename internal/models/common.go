// internal/models/common.go
package models

// Stock statuses
const (
	StatusInStock    = "In Stock"
	StatusOutOfStock = "Out of Stock"
)

// StatusForStock derives the status shown when none is supplied.
func StatusForStock(stock int) string {
	if stock > 0 {
		return StatusInStock
	}
	return StatusOutOfStock
}

// Export/import column order
var ProductColumns = []string{"name", "unit", "category", "brand", "stock", "status", "image"}
