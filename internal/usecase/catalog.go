package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

// CatalogUseCase manages the product catalog.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

func validateProduct(p model.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domainErrors.NewValidation("name is required")
	}
	if p.Price < 0 {
		return domainErrors.NewValidation("price must not be negative")
	}
	if p.StockQuantity < 0 {
		return domainErrors.NewValidation("stock_quantity must not be negative")
	}
	return nil
}

// Create adds a product to the catalog.
func (u *CatalogUseCase) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Create(ctx, product)
}

// Get returns one product.
func (u *CatalogUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns products filtered by category with pagination.
func (u *CatalogUseCase) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.products.List(ctx, filter)
}

// Update replaces a product's fields.
func (u *CatalogUseCase) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return u.products.Update(ctx, product)
}

// Delete removes a product from the catalog.
func (u *CatalogUseCase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}
