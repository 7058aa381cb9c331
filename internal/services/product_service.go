// internal/services/product_service.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-tracker/internal/config"
	"github.com/javajoker/inventory-tracker/internal/models"
	"github.com/javajoker/inventory-tracker/internal/utils"
)

type ProductService struct {
	store  ProductStore
	config *config.Config
	now    func() time.Time
}

// UpdateProductRequest is a full replacement of a product's editable fields.
type UpdateProductRequest struct {
	Name     string          `json:"name" validate:"required"`
	Unit     string          `json:"unit"`
	Category string          `json:"category"`
	Brand    string          `json:"brand"`
	Stock    json.RawMessage `json:"stock" validate:"stock_required,stock"`
	Status   string          `json:"status"`
	Image    string          `json:"image"`
}

func NewProductService(store ProductStore, config *config.Config) *ProductService {
	return &ProductService{
		store:  store,
		config: config,
		now:    time.Now,
	}
}

func (s *ProductService) ListProducts(ctx context.Context, category string) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx, ProductFilter{Category: category})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return nonNilProducts(products), nil
}

// SearchProducts matches name case-insensitively as a substring. An empty
// name returns every product.
func (s *ProductService) SearchProducts(ctx context.Context, name string) ([]models.Product, error) {
	products, err := s.store.ListProducts(ctx, ProductFilter{NameContains: name})
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return nonNilProducts(products), nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// UpdateProduct replaces the product's fields. A stock change appends one
// inventory log carrying the stored stock as its old value, written in the
// same transaction and before the product row changes.
func (s *ProductService) UpdateProduct(ctx context.Context, id uint, actor string, req *UpdateProductRequest) (*models.Product, error) {
	req.Name = strings.TrimSpace(req.Name)

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		return nil, ValidationErrors(validationErrors)
	}

	stock, err := utils.ParseStock(req.Stock)
	if err != nil {
		return nil, ValidationErrors{{Field: "stock", Tag: "stock", Message: err.Error()}}
	}

	status, err := s.resolveStatus(req.Status, stock)
	if err != nil {
		return nil, err
	}

	if actor == "" {
		actor = s.config.Inventory.DefaultActor
	}

	var updated models.Product
	err = s.store.WithTx(ctx, func(tx ProductStore) error {
		existing, err := tx.GetProduct(ctx, id)
		if err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if existing == nil {
			return ErrProductNotFound
		}

		conflict, err := tx.FindByName(ctx, req.Name, id)
		if err != nil {
			return fmt.Errorf("database error: %w", err)
		}
		if conflict != nil {
			return ErrDuplicateName
		}

		if existing.Stock != stock {
			entry := &models.InventoryLog{
				ProductID: existing.ID,
				OldStock:  existing.Stock,
				NewStock:  stock,
				ChangedBy: actor,
				Timestamp: models.FormatTimestamp(s.now()),
			}
			if err := tx.AppendLog(ctx, entry); err != nil {
				return fmt.Errorf("failed to record stock change: %w", err)
			}

			logrus.WithFields(logrus.Fields{
				"product_id": existing.ID,
				"old_stock":  existing.Stock,
				"new_stock":  stock,
				"changed_by": actor,
			}).Info("Stock changed")
		}

		updated = *existing
		updated.Name = req.Name
		updated.Unit = req.Unit
		updated.Category = req.Category
		updated.Brand = req.Brand
		updated.Stock = stock
		updated.Status = status
		updated.Image = req.Image

		if err := tx.UpdateProduct(ctx, &updated); err != nil {
			return fmt.Errorf("failed to update product: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *ProductService) resolveStatus(status string, stock int) (string, error) {
	derived := models.StatusForStock(stock)
	if status == "" {
		return derived, nil
	}
	if s.config.Inventory.StatusMode == config.StatusModeStrict && status != derived {
		return "", ValidationErrors{{
			Field:   "status",
			Tag:     "status",
			Message: fmt.Sprintf("Status must be %q for stock %d", derived, stock),
		}}
	}
	return status, nil
}

// GetHistory lists a product's stock changes, newest first. Unknown
// products simply have no history.
func (s *ProductService) GetHistory(ctx context.Context, productID uint) ([]models.InventoryLog, error) {
	logs, err := s.store.ListLogs(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list inventory logs: %w", err)
	}
	if logs == nil {
		logs = []models.InventoryLog{}
	}
	return logs, nil
}

func nonNilProducts(products []models.Product) []models.Product {
	if products == nil {
		return []models.Product{}
	}
	return products
}
