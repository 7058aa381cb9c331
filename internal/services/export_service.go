// internal/services/export_service.go
package services

import (
	"context"
	"fmt"
	"strconv"

	"github.com/javajoker/inventory-tracker/internal/models"
	"github.com/javajoker/inventory-tracker/internal/tabular"
)

const exportSheet = "Products"

type ExportService struct {
	store ProductStore
}

// ExportFile is a rendered download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func NewExportService(store ProductStore) *ExportService {
	return &ExportService{store: store}
}

// ExportProducts renders every product in storage order.
func (s *ExportService) ExportProducts(ctx context.Context, format tabular.Format) (*ExportFile, error) {
	products, err := s.store.ListProducts(ctx, ProductFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	var data []byte
	switch format {
	case tabular.FormatXLSX:
		records := make([][]interface{}, 0, len(products))
		for _, p := range products {
			records = append(records, []interface{}{p.Name, p.Unit, p.Category, p.Brand, p.Stock, p.Status, p.Image})
		}
		data, err = tabular.EncodeXLSX(exportSheet, models.ProductColumns, records)
		if err != nil {
			return nil, err
		}
	default:
		records := make([][]string, 0, len(products))
		for _, p := range products {
			records = append(records, productRecord(p))
		}
		data = tabular.EncodeCSV(models.ProductColumns, records)
	}

	return &ExportFile{
		Filename:    "products" + format.Extension(),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

// ImportTemplate renders a header-only file clients can fill in.
func (s *ExportService) ImportTemplate(format tabular.Format) (*ExportFile, error) {
	var data []byte
	switch format {
	case tabular.FormatXLSX:
		var err error
		data, err = tabular.EncodeXLSX(exportSheet, models.ProductColumns, nil)
		if err != nil {
			return nil, err
		}
	default:
		data = tabular.EncodeCSV(models.ProductColumns, nil)
	}

	return &ExportFile{
		Filename:    "products_import_template" + format.Extension(),
		ContentType: format.ContentType(),
		Data:        data,
	}, nil
}

func productRecord(p models.Product) []string {
	return []string{
		p.Name,
		p.Unit,
		p.Category,
		p.Brand,
		strconv.Itoa(p.Stock),
		p.Status,
		p.Image,
	}
}
