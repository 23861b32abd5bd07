package dto

import "time"

// OrderItemRequest is one requested line. The unit price field is accepted
// for backwards compatibility with older clients but the authoritative price
// is always read from the catalog.
type OrderItemRequest struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// CreateOrderRequest is the order placement payload.
type CreateOrderRequest struct {
	CustomerName    string             `json:"customer_name"`
	CustomerEmail   string             `json:"customer_email"`
	CustomerPhone   string             `json:"customer_phone"`
	ShippingAddress string             `json:"shipping_address"`
	BillingAddress  string             `json:"billing_address"`
	Items           []OrderItemRequest `json:"items"`
	PaymentMethod   string             `json:"payment_method"`
	Notes           string             `json:"notes"`
}

// OrderItemResponse is one persisted line item.
type OrderItemResponse struct {
	ID         string  `json:"id"`
	ProductID  string  `json:"product_id"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	TotalPrice float64 `json:"total_price"`
}

// OrderResponse is a persisted order with its items.
type OrderResponse struct {
	ID              string              `json:"id"`
	OrderNumber     string              `json:"order_number"`
	CustomerName    string              `json:"customer_name"`
	CustomerEmail   string              `json:"customer_email"`
	CustomerPhone   string              `json:"customer_phone,omitempty"`
	ShippingAddress string              `json:"shipping_address"`
	BillingAddress  string              `json:"billing_address"`
	TotalAmount     float64             `json:"total_amount"`
	PaymentMethod   string              `json:"payment_method"`
	Notes           string              `json:"notes,omitempty"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"payment_status"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
}

// CreateOrderResponse is the success body for order placement.
type CreateOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
	Message string        `json:"message"`
}
