// internal/repository/product_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/javajoker/inventory-tracker/internal/database"
	"github.com/javajoker/inventory-tracker/internal/models"
	"github.com/javajoker/inventory-tracker/internal/services"
)

// ProductRepository is the gorm-backed services.ProductStore.
type ProductRepository struct {
	db *gorm.DB
}

var _ services.ProductStore = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListProducts(ctx context.Context, filter services.ProductFilter) ([]models.Product, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{})

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.NameContains != "" {
		pattern := "%" + escapeLike(strings.ToLower(filter.NameContains)) + "%"
		query = query.Where(`name_key LIKE ? ESCAPE '\'`, pattern)
	}

	var products []models.Product
	if err := query.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) FindByName(ctx context.Context, name string, excludeID uint) (*models.Product, error) {
	query := r.db.WithContext(ctx).Where("name_key = ?", models.NameKey(name))
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}

	var product models.Product
	if err := query.Order("id ASC").Take(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	product.NameKey = models.NameKey(product.Name)
	return r.db.WithContext(ctx).Create(product).Error
}

// UpdateProduct writes every editable column, zero values included.
func (r *ProductRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	now := time.Now()
	updates := map[string]interface{}{
		"name":       product.Name,
		"name_key":   models.NameKey(product.Name),
		"unit":       product.Unit,
		"category":   product.Category,
		"brand":      product.Brand,
		"stock":      product.Stock,
		"status":     product.Status,
		"image":      product.Image,
		"updated_at": now,
	}

	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", product.ID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("update affected %d rows, but expected exactly 1", res.RowsAffected)
	}

	product.NameKey = models.NameKey(product.Name)
	product.UpdatedAt = now
	return nil
}

func (r *ProductRepository) AppendLog(ctx context.Context, log *models.InventoryLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *ProductRepository) ListLogs(ctx context.Context, productID uint) ([]models.InventoryLog, error) {
	var logs []models.InventoryLog
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("timestamp DESC").
		Order("id DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *ProductRepository) WithTx(ctx context.Context, fn func(services.ProductStore) error) error {
	return database.WithTransaction(r.db.WithContext(ctx), func(tx *gorm.DB) error {
		return fn(&ProductRepository{db: tx})
	})
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
