// internal/services/errors.go
package services

import (
	"errors"
	"strings"

	"github.com/javajoker/inventory-tracker/internal/utils"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateName   = errors.New("product name must be unique")
	ErrUnreadableFile  = errors.New("uploaded file could not be parsed")
)

// ValidationErrors is returned when a request fails input validation.
type ValidationErrors []utils.ValidationError

func (v ValidationErrors) Error() string {
	messages := make([]string, 0, len(v))
	for _, fe := range v {
		messages = append(messages, fe.Message)
	}
	return "validation failed: " + strings.Join(messages, "; ")
}
