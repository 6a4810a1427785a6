package error

import "errors"

// Recipe domain errors.
var (
	// ErrRecipeNotFound is returned when a recipe is not found.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrRecipeNameTooShort is returned when a recipe name is shorter than the minimum.
	ErrRecipeNameTooShort = errors.New("recipe name too short")

	// ErrRecipeNoIngredients is returned when finalizing a recipe without ingredient lines.
	ErrRecipeNoIngredients = errors.New("recipe has no ingredients")

	// ErrInvalidQuantity is returned when an ingredient quantity is not a positive number.
	ErrInvalidQuantity = errors.New("quantity must be a positive number")
)

// RecipeErrorCode defines error codes for recipe errors.
type RecipeErrorCode string

const (
	ErrCodeRecipeNotFound      RecipeErrorCode = "RCP-010001"
	ErrCodeRecipeNameTooShort  RecipeErrorCode = "RCP-010002"
	ErrCodeRecipeNoIngredients RecipeErrorCode = "RCP-010003"
	ErrCodeInvalidQuantity     RecipeErrorCode = "RCP-010004"
)

// RecipeError represents a recipe error with code and message.
type RecipeError struct {
	Code    RecipeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecipeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecipeError) Unwrap() error {
	return e.Err
}

// NewRecipeError creates a new RecipeError with the given code and message.
func NewRecipeError(code RecipeErrorCode, message string, err error) *RecipeError {
	return &RecipeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
