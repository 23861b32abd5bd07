package test

import (
	"context"
	"fmt"
	"sync"
	"time"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

// OrderRepositoryStub provides controllable order persistence for tests.
type OrderRepositoryStub struct {
	CreateFn        func(context.Context, repository.NewOrder) (*model.Order, error)
	CreateItemsFn   func(context.Context, string, []repository.NewOrderItem) ([]model.OrderItem, error)
	DeleteFn        func(context.Context, string) error
	GetByIDFn       func(context.Context, string) (*model.Order, error)
	ListFn          func(context.Context, repository.OrderFilter) ([]model.Order, int, error)
	SelectOrphansFn func(context.Context, time.Duration, int) ([]model.Order, error)

	mu      sync.Mutex
	Deleted []string
}

// Create stores the order or delegates to the override.
func (s *OrderRepositoryStub) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, order)
	}
	return &model.Order{
		ID:              "order-1",
		Number:          order.Number,
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: order.ShippingAddress,
		BillingAddress:  order.BillingAddress,
		TotalAmount:     order.TotalAmount,
		PaymentMethod:   order.PaymentMethod,
		Notes:           order.Notes,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
	}, nil
}

// CreateItems materializes line items or delegates to the override.
func (s *OrderRepositoryStub) CreateItems(ctx context.Context, orderID string, items []repository.NewOrderItem) ([]model.OrderItem, error) {
	if s.CreateItemsFn != nil {
		return s.CreateItemsFn(ctx, orderID, items)
	}
	created := make([]model.OrderItem, 0, len(items))
	for i, item := range items {
		created = append(created, model.OrderItem{
			ID:         fmt.Sprintf("item-%d", i+1),
			OrderID:    orderID,
			ProductID:  item.ProductID,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}
	return created, nil
}

// Delete records the removed identifier.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, id)
	return nil
}

// GetByID returns a stored order.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return &model.Order{ID: id, Number: "PD-1700000000000-AB12"}, nil
}

// List returns the configured listing.
func (s *OrderRepositoryStub) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return []model.Order{{ID: "order-1"}}, 1, nil
}

// SelectOrphans returns the configured orphan batch.
func (s *OrderRepositoryStub) SelectOrphans(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.SelectOrphansFn != nil {
		return s.SelectOrphansFn(ctx, olderThan, limit)
	}
	return nil, nil
}

// DeletedIDs returns a copy of recorded deletions.
func (s *OrderRepositoryStub) DeletedIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.Deleted...)
}

// ProductRepositoryStub serves products from an in-memory map.
type ProductRepositoryStub struct {
	Products map[string]model.Product

	GetByIDFn        func(context.Context, string) (*model.Product, error)
	DecrementStockFn func(context.Context, string, int) error

	mu         sync.Mutex
	Decrements map[string]int
}

// GetByID looks the product up in the map.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	if p, ok := s.Products[id]; ok {
		return &p, nil
	}
	return nil, domainErrors.ErrNotFound
}

// Create stores the product.
func (s *ProductRepositoryStub) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	if product.ID == "" {
		product.ID = "p1"
	}
	if s.Products == nil {
		s.Products = map[string]model.Product{}
	}
	s.Products[product.ID] = product
	return &product, nil
}

// List returns all stored products.
func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int, error) {
	result := make([]model.Product, 0, len(s.Products))
	for _, p := range s.Products {
		result = append(result, p)
	}
	return result, len(result), nil
}

// Update replaces a stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	if _, ok := s.Products[product.ID]; !ok {
		return nil, domainErrors.ErrNotFound
	}
	s.Products[product.ID] = product
	return &product, nil
}

// Delete removes a stored product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if _, ok := s.Products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.Products, id)
	return nil
}

// DecrementStock records the decrement and applies it to the map.
func (s *ProductRepositoryStub) DecrementStock(ctx context.Context, id string, quantity int) error {
	if s.DecrementStockFn != nil {
		return s.DecrementStockFn(ctx, id, quantity)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.Products[id]
	if !ok || p.StockQuantity < quantity {
		return domainErrors.InsufficientStockError{ProductID: id}
	}
	p.StockQuantity -= quantity
	s.Products[id] = p
	if s.Decrements == nil {
		s.Decrements = map[string]int{}
	}
	s.Decrements[id] += quantity
	return nil
}

// PingerStub reports configurable storage health.
type PingerStub struct {
	Err error
}

// HealthCheck returns the configured error.
func (s PingerStub) HealthCheck(context.Context) error {
	return s.Err
}
