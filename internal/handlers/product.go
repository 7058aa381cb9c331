// internal/handlers/product.go
package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/inventory-tracker/internal/config"
	"github.com/javajoker/inventory-tracker/internal/i18n"
	"github.com/javajoker/inventory-tracker/internal/services"
	"github.com/javajoker/inventory-tracker/internal/tabular"
	"github.com/javajoker/inventory-tracker/internal/utils"
)

type ProductHandler struct {
	productService *services.ProductService
	importService  *services.ImportService
	exportService  *services.ExportService
	config         *config.Config
}

func NewProductHandler(productService *services.ProductService, importService *services.ImportService, exportService *services.ExportService, config *config.Config) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		importService:  importService,
		exportService:  exportService,
		config:         config,
	}
}

// GET /api/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.productService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/products/search
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.productService.SearchProducts(c.Request.Context(), c.Query("name"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, products)
}

// GET /api/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req services.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	actor, _ := utils.GetActorFromContext(c)
	product, err := h.productService.UpdateProduct(c.Request.Context(), id, actor, &req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, product)
}

// GET /api/products/:id/history
func (h *ProductHandler) GetHistory(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	logs, err := h.productService.GetHistory(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, logs)
}

// POST /api/products/import
func (h *ProductHandler) ImportProducts(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileRequired), nil)
		return
	}

	if limit := h.config.Inventory.MaxUploadSize; limit > 0 && header.Size > limit {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileTooLarge), gin.H{"max_bytes": limit})
		return
	}

	format := tabular.FormatFromFilename(header.Filename)
	if value := c.Query("format"); value != "" {
		if format, err = tabular.ParseFormat(value); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType, value), nil)
			return
		}
	}

	path, err := h.saveUpload(header, format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	result, err := h.importService.ImportFile(c.Request.Context(), path, format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	utils.SuccessResponse(c, result)
}

// GET /api/products/import/template
func (h *ProductHandler) ImportTemplate(c *gin.Context) {
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	file, err := h.exportService.ImportTemplate(format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	sendFile(c, file)
}

// GET /api/products/export
func (h *ProductHandler) ExportProducts(c *gin.Context) {
	format, ok := parseFormat(c)
	if !ok {
		return
	}

	file, err := h.exportService.ExportProducts(c.Request.Context(), format)
	if err != nil {
		h.handleError(c, err)
		return
	}

	sendFile(c, file)
}

// saveUpload copies the multipart file into the upload directory and
// returns the temp path. The import service removes it.
func (h *ProductHandler) saveUpload(header *multipart.FileHeader, format tabular.Format) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(h.config.Inventory.UploadDir, "import-*"+format.Extension())
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to store upload: %w", err)
	}

	return dst.Name(), nil
}

func (h *ProductHandler) handleError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var validationErrs services.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		utils.ValidationErrorResponse(c, validationErrs)
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, i18n.KeyProductNotFound)
	case errors.Is(err, services.ErrDuplicateName):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductNameTaken), nil)
	case errors.Is(err, services.ErrUnreadableFile):
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUnreadable), nil)
	default:
		logrus.WithFields(logrus.Fields{
			"request_id": utils.GetRequestIDFromContext(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
		}).WithError(err).Error("Request failed")
		c.Error(err)
		utils.InternalErrorResponse(c)
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyProductInvalidID), nil)
		return 0, false
	}
	return uint(id), true
}

func parseFormat(c *gin.Context) (tabular.Format, bool) {
	value := c.Query("format")
	format, err := tabular.ParseFormat(value)
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileInvalidType, value), nil)
		return "", false
	}
	return format, true
}

func sendFile(c *gin.Context, file *services.ExportFile) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
