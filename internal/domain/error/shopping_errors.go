package error

import "errors"

// Shopping list domain errors.
var (
	// ErrNoRecipesSelected is returned when generating a shopping list from an empty selection.
	ErrNoRecipesSelected = errors.New("no recipes selected")

	// ErrShoppingItemNotFound is returned when a shopping list row is not found for the user.
	ErrShoppingItemNotFound = errors.New("shopping item not found")

	// ErrAdHocItemNotFound is returned when an ad-hoc entry is not found for the user.
	ErrAdHocItemNotFound = errors.New("ad-hoc item not found")

	// ErrSelectionNotFound is returned when removing a recipe that is not in the selection.
	ErrSelectionNotFound = errors.New("recipe not in selection")
)

// ShoppingErrorCode defines error codes for shopping list errors.
type ShoppingErrorCode string

const (
	ErrCodeNoRecipesSelected    ShoppingErrorCode = "SHP-010001"
	ErrCodeShoppingItemNotFound ShoppingErrorCode = "SHP-010002"
	ErrCodeAdHocItemNotFound    ShoppingErrorCode = "SHP-010003"
	ErrCodeSelectionNotFound    ShoppingErrorCode = "SHP-010004"
)

// ShoppingError represents a shopping list error with code and message.
type ShoppingError struct {
	Code    ShoppingErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ShoppingError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ShoppingError) Unwrap() error {
	return e.Err
}

// NewShoppingError creates a new ShoppingError with the given code and message.
func NewShoppingError(code ShoppingErrorCode, message string, err error) *ShoppingError {
	return &ShoppingError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
