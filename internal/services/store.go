// internal/services/store.go
package services

import (
	"context"

	"github.com/javajoker/inventory-tracker/internal/models"
)

// ProductFilter narrows a product listing. Zero values match everything.
type ProductFilter struct {
	Category     string
	NameContains string
}

// ProductStore is the storage capability the product services depend on.
// Lookups return (nil, nil) when nothing matches.
type ProductStore interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]models.Product, error)
	GetProduct(ctx context.Context, id uint) (*models.Product, error)
	// FindByName matches case-insensitively, ignoring the product with excludeID (0 excludes nothing).
	FindByName(ctx context.Context, name string, excludeID uint) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProduct(ctx context.Context, product *models.Product) error

	AppendLog(ctx context.Context, log *models.InventoryLog) error
	ListLogs(ctx context.Context, productID uint) ([]models.InventoryLog, error)

	// WithTx runs fn against a store bound to one transaction, committing
	// when fn returns nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(ProductStore) error) error
}
