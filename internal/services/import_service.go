// internal/services/import_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-tracker/internal/config"
	"github.com/javajoker/inventory-tracker/internal/models"
	"github.com/javajoker/inventory-tracker/internal/tabular"
)

type ImportService struct {
	store  ProductStore
	config *config.Config
}

type ImportResult struct {
	Added      int         `json:"added"`
	Skipped    int         `json:"skipped"`
	Duplicates []Duplicate `json:"duplicates"`
}

// Duplicate names an import row that matched an existing product.
type Duplicate struct {
	Name       string `json:"name"`
	ExistingID uint   `json:"existingId"`
}

func NewImportService(store ProductStore, config *config.Config) *ImportService {
	return &ImportService{
		store:  store,
		config: config,
	}
}

// ImportFile parses the uploaded file at path and reconciles its rows. The
// file is removed afterwards whether or not the import succeeded.
func (s *ImportService) ImportFile(ctx context.Context, path string, format tabular.Format) (*ImportResult, error) {
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logrus.WithError(err).WithField("path", path).Warn("Failed to remove uploaded file")
		}
	}()

	rows, err := tabular.ReadFile(path, format)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}

	return s.Reconcile(ctx, rows)
}

// Reconcile inserts rows whose name is not yet taken and tallies the rest.
// Existing products are never modified. Unless atomic imports are enabled,
// rows inserted before a storage error stay committed.
func (s *ImportService) Reconcile(ctx context.Context, rows []tabular.Row) (*ImportResult, error) {
	var (
		result *ImportResult
		err    error
	)

	if s.config.Inventory.AtomicImport {
		err = s.store.WithTx(ctx, func(tx ProductStore) error {
			var txErr error
			result, txErr = reconcileRows(ctx, tx, rows)
			return txErr
		})
	} else {
		result, err = reconcileRows(ctx, s.store, rows)
	}
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"rows":       len(rows),
		"added":      result.Added,
		"skipped":    result.Skipped,
		"duplicates": len(result.Duplicates),
		"atomic":     s.config.Inventory.AtomicImport,
	}).Info("Product import completed")

	return result, nil
}

func reconcileRows(ctx context.Context, store ProductStore, rows []tabular.Row) (*ImportResult, error) {
	result := &ImportResult{Duplicates: []Duplicate{}}

	for i, row := range rows {
		name := strings.TrimSpace(row.Get("name"))
		if name == "" {
			result.Skipped++
			continue
		}

		existing, err := store.FindByName(ctx, name, 0)
		if err != nil {
			return nil, fmt.Errorf("row %d: database error: %w", i+1, err)
		}
		if existing != nil {
			result.Skipped++
			result.Duplicates = append(result.Duplicates, Duplicate{Name: existing.Name, ExistingID: existing.ID})
			continue
		}

		stock := CoerceStock(row.Get("stock"))
		status := row.Get("status")
		if status == "" {
			status = models.StatusForStock(stock)
		}

		product := &models.Product{
			Name:     name,
			Unit:     row.Get("unit"),
			Category: row.Get("category"),
			Brand:    row.Get("brand"),
			Stock:    stock,
			Status:   status,
			Image:    row.Get("image"),
		}
		if err := store.CreateProduct(ctx, product); err != nil {
			return nil, fmt.Errorf("row %d: failed to create product %q: %w", i+1, name, err)
		}
		result.Added++
	}

	return result, nil
}

// CoerceStock turns a loosely formatted cell into a stock level. Decimals
// are truncated; blanks, garbage and negatives become 0.
func CoerceStock(value string) int {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0
	}

	stock, err := strconv.Atoi(value)
	if err != nil {
		f, ferr := strconv.ParseFloat(value, 64)
		if ferr != nil || math.IsNaN(f) || math.IsInf(f, 0) || math.Abs(f) > math.MaxInt32 {
			return 0
		}
		stock = int(f)
	}
	if stock < 0 {
		return 0
	}
	return stock
}
