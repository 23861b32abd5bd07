package model

import "time"

// OrderStatus describes the order lifecycle. Only the initial state is
// assigned by this service; later states are driven by back-office tooling.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// PaymentStatus tracks payment progress for an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
)

// Order is a customer's confirmed purchase request with snapshot pricing.
type Order struct {
	ID              string
	Number          string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	BillingAddress  string
	TotalAmount     float64
	PaymentMethod   string
	Notes           string
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	Items           []OrderItem
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OrderItem is one line within an order. UnitPrice is the product price read
// at validation time, not a live reference.
type OrderItem struct {
	ID         string
	OrderID    string
	ProductID  string
	Quantity   int
	UnitPrice  float64
	TotalPrice float64
}
