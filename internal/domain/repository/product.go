package repository

import (
	"context"

	"github.com/primedecor/backend/internal/domain/model"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	Category string
	Limit    int
	Offset   int
}

// ProductRepository persists catalog products. DecrementStock performs an
// atomic conditional decrement and returns domain InsufficientStockError
// when the remaining stock cannot cover the quantity.
type ProductRepository interface {
	Create(ctx context.Context, product model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, int, error)
	Update(ctx context.Context, product model.Product) (*model.Product, error)
	Delete(ctx context.Context, id string) error
	DecrementStock(ctx context.Context, id string, quantity int) error
}
