package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation        = errors.New("validation failed")
	ErrNotFound          = errors.New("not found")
	ErrAlreadyExists     = errors.New("already exists")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrPersistence       = errors.New("persistence failure")
)

// ProductNotFoundError names the line item that referenced a missing product.
type ProductNotFoundError struct {
	ProductID string
}

func (e ProductNotFoundError) Error() string {
	return fmt.Sprintf("Product %s not found", e.ProductID)
}

func (e ProductNotFoundError) Unwrap() error { return ErrNotFound }

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductID string
}

func (e InsufficientStockError) Error() string {
	return fmt.Sprintf("Insufficient stock for product %s", e.ProductID)
}

func (e InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// ValidationError carries a human readable message about a rejected request
// field.
type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string { return e.Message }

func (e ValidationError) Unwrap() error { return ErrValidation }

// NewValidation builds a ValidationError from a format string.
func NewValidation(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}
