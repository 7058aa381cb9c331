// internal/utils/validator.go
package utils

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var (
	ErrStockMissing = errors.New("stock is required")
	ErrStockInvalid = errors.New("stock must be a non-negative integer")
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("stock_required", validateStockRequired)
	validate.RegisterValidation("stock", validateStock)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ParseStock reads a stock value sent either as a JSON integer or as a
// string holding one.
func ParseStock(raw json.RawMessage) (int, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, ErrStockMissing
	}

	text := string(raw)
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, ErrStockInvalid
		}
		text = strings.TrimSpace(s)
		if text == "" {
			return 0, ErrStockMissing
		}
	}

	stock, err := strconv.Atoi(text)
	if err != nil {
		// JSON numbers such as 5.0 are still integers
		f, ferr := strconv.ParseFloat(text, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, ErrStockInvalid
		}
		stock = int(f)
	}
	if stock < 0 {
		return 0, ErrStockInvalid
	}
	return stock, nil
}

func validateStockRequired(fl validator.FieldLevel) bool {
	_, err := ParseStock(fl.Field().Bytes())
	return !errors.Is(err, ErrStockMissing)
}

func validateStock(fl validator.FieldLevel) bool {
	_, err := ParseStock(fl.Field().Bytes())
	return err == nil
}

// Validation tags for common fields
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required", "stock_required":
		return e.Field() + " is required"
	case "stock":
		return "Stock must be a number greater than or equal to 0"
	case "max":
		return e.Field() + " must be at most " + e.Param() + " characters"
	default:
		return e.Field() + " is invalid"
	}
}
