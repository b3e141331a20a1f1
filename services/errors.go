package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPromo       = errors.New("invalid or expired promo code")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserExists         = errors.New("username or email already exists")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOutOfStock         = errors.New("product is out of stock")
)

// ValidationError reports bad caller input (missing address, bad quantity).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// InsufficientStockError names the product whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductID   uint
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product: %s", e.ProductName)
}
