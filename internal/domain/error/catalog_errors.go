// Package error defines domain-specific errors for the Pantry Bot backend.
package error

import "errors"

// Catalog domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameExists is returned when creating a category with a name already in use.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrCategoryNotEmpty is returned when deleting a category that still owns products.
	ErrCategoryNotEmpty = errors.New("category still has products")

	// ErrCategoryNameTooShort is returned when a category name is shorter than the minimum.
	ErrCategoryNameTooShort = errors.New("category name too short")

	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductNameExists is returned when renaming a product to a name already in use.
	ErrProductNameExists = errors.New("product name already exists")

	// ErrProductNameTooShort is returned when a product name is shorter than the minimum.
	ErrProductNameTooShort = errors.New("product name too short")
)

// CatalogErrorCode defines error codes for catalog errors.
// Format: CAT-XXYYYY where XX is the class and YYYY the specific error.
type CatalogErrorCode string

const (
	ErrCodeCategoryNotFound     CatalogErrorCode = "CAT-010001"
	ErrCodeCategoryNameExists   CatalogErrorCode = "CAT-010002"
	ErrCodeCategoryNotEmpty     CatalogErrorCode = "CAT-010003"
	ErrCodeCategoryNameTooShort CatalogErrorCode = "CAT-010004"
	ErrCodeProductNotFound      CatalogErrorCode = "CAT-020001"
	ErrCodeProductNameExists    CatalogErrorCode = "CAT-020002"
	ErrCodeProductNameTooShort  CatalogErrorCode = "CAT-020003"
)

// CatalogError represents a catalog error with code and message.
type CatalogError struct {
	Code    CatalogErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CatalogError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CatalogError) Unwrap() error {
	return e.Err
}

// NewCatalogError creates a new CatalogError with the given code and message.
func NewCatalogError(code CatalogErrorCode, message string, err error) *CatalogError {
	return &CatalogError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
