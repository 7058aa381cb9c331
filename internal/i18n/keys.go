// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyInternalError     = "error.internal"
	KeyRouteNotFound     = "route.not_found"
	KeyRateLimitExceeded = "rate_limit.exceeded"

	// Products
	KeyProductNotFound  = "product.not_found"
	KeyProductNameTaken = "product.name_taken"
	KeyProductInvalidID = "product.invalid_id"

	// Validation
	KeyValidationInvalid = "validation.invalid"

	// File Upload
	KeyFileRequired    = "file.required"
	KeyFileUnreadable  = "file.unreadable"
	KeyFileInvalidType = "file.invalid_type"
	KeyFileTooLarge    = "file.too_large"
)
