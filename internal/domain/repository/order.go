package repository

import (
	"context"
	"time"

	"github.com/primedecor/backend/internal/domain/model"
)

// NewOrder carries pre-validated fields for the order insert.
type NewOrder struct {
	Number          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	BillingAddress  string
	TotalAmount     float64
	PaymentMethod   string
	Notes           string
}

// NewOrderItem carries one line item for the bulk insert. UnitPrice is the
// price snapshot taken by the stock validator.
type NewOrderItem struct {
	ProductID  string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}

// OrderFilter narrows admin order listings.
type OrderFilter struct {
	Status string
	Limit  int
	Offset int
}

// OrderRepository persists orders and their line items. Create returns
// domain ErrAlreadyExists when the generated order number collides, so the
// caller can regenerate and retry.
type OrderRepository interface {
	Create(ctx context.Context, order NewOrder) (*model.Order, error)
	CreateItems(ctx context.Context, orderID string, items []NewOrderItem) ([]model.OrderItem, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int, error)
	SelectOrphans(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
}
