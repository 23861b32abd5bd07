package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/metrics"
)

const (
	orderNumberPrefix = "PD"
	orderNumberSuffix = 4
	createAttempts    = 3
)

const suffixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// OrderLine is one requested line item. The quantity must be positive; the
// unit price is always read from the product, never from the client.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// PlaceOrderCommand carries a parsed order placement request.
type PlaceOrderCommand struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ShippingAddress string
	BillingAddress  string
	PaymentMethod   string
	Notes           string
	Items           []OrderLine
}

// CheckoutUseCase runs the order placement workflow: stock validation, order
// insert, line item insert with compensating delete on failure, then stock
// decrement.
type CheckoutUseCase struct {
	orders       repository.OrderRepository
	products     repository.ProductRepository
	logger       *slog.Logger
	metrics      *metrics.Metrics
	stageTimeout time.Duration
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, products repository.ProductRepository, m *metrics.Metrics, stageTimeout time.Duration, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:       orders,
		products:     products,
		logger:       logger,
		metrics:      m,
		stageTimeout: stageTimeout,
	}
}

// PlaceOrder executes the workflow for one request. Stages run strictly in
// sequence; the only write undone on failure is the order row itself, via a
// best-effort compensating delete.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, cmd PlaceOrderCommand) (*model.Order, error) {
	if err := u.validateCommand(cmd); err != nil {
		u.metrics.OrderFailed(metrics.ReasonValidation)
		return nil, err
	}

	total, prices, err := u.validateStock(ctx, cmd.Items)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrNotFound):
			u.metrics.OrderFailed(metrics.ReasonNotFound)
		case errors.Is(err, domainErrors.ErrInsufficientStock):
			u.metrics.OrderFailed(metrics.ReasonInsufficientStock)
		default:
			u.metrics.OrderFailed(metrics.ReasonPersistence)
		}
		return nil, err
	}

	order, err := u.createOrder(ctx, cmd, total)
	if err != nil {
		u.metrics.OrderFailed(metrics.ReasonPersistence)
		return nil, err
	}

	items, err := u.createItems(ctx, order.ID, cmd.Items, prices)
	if err != nil {
		u.compensate(ctx, order.ID)
		u.metrics.OrderFailed(metrics.ReasonPersistence)
		return nil, err
	}
	order.Items = items

	u.decrementStock(ctx, order.Number, cmd.Items)

	u.metrics.OrderPlaced()
	u.logger.Info("order placed",
		slog.String("order_number", order.Number),
		slog.Int("items", len(order.Items)),
		slog.Float64("total", order.TotalAmount),
	)
	return order, nil
}

func (u *CheckoutUseCase) validateCommand(cmd PlaceOrderCommand) error {
	if strings.TrimSpace(cmd.CustomerName) == "" {
		return domainErrors.NewValidation("customer_name is required")
	}
	if strings.TrimSpace(cmd.CustomerEmail) == "" {
		return domainErrors.NewValidation("customer_email is required")
	}
	if !ValidateEmail(cmd.CustomerEmail) {
		return domainErrors.NewValidation("customer_email is not a valid email address")
	}
	if strings.TrimSpace(cmd.ShippingAddress) == "" {
		return domainErrors.NewValidation("shipping_address is required")
	}
	if len(cmd.Items) == 0 {
		return domainErrors.NewValidation("order must contain at least one item")
	}
	for _, line := range cmd.Items {
		if line.ProductID == "" {
			return domainErrors.NewValidation("item product_id is required")
		}
		if line.Quantity <= 0 {
			return domainErrors.NewValidation("item quantity must be positive")
		}
	}
	return nil
}

// validateStock fetches price and stock for every line, first failure wins.
// It returns the order total and the per-product price snapshot.
func (u *CheckoutUseCase) validateStock(ctx context.Context, lines []OrderLine) (float64, map[string]float64, error) {
	var total float64
	prices := make(map[string]float64, len(lines))

	for _, line := range lines {
		stageCtx, cancel := u.stageContext(ctx)
		product, err := u.products.GetByID(stageCtx, line.ProductID)
		cancel()
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return 0, nil, domainErrors.ProductNotFoundError{ProductID: line.ProductID}
			}
			return 0, nil, fmt.Errorf("%w: fetch product %s: %w", domainErrors.ErrPersistence, line.ProductID, err)
		}
		if product.StockQuantity < line.Quantity {
			return 0, nil, domainErrors.InsufficientStockError{ProductID: line.ProductID}
		}
		prices[line.ProductID] = product.Price
		total += product.Price * float64(line.Quantity)
	}

	return total, prices, nil
}

// createOrder inserts the pending order row. The generated number is unique
// only probabilistically, so the insert retries with a fresh number when the
// store reports a collision.
func (u *CheckoutUseCase) createOrder(ctx context.Context, cmd PlaceOrderCommand, total float64) (*model.Order, error) {
	billing := cmd.BillingAddress
	if strings.TrimSpace(billing) == "" {
		billing = cmd.ShippingAddress
	}
	payment := cmd.PaymentMethod
	if payment == "" {
		payment = "pending"
	}

	var lastErr error
	for attempt := 0; attempt < createAttempts; attempt++ {
		stageCtx, cancel := u.stageContext(ctx)
		order, err := u.orders.Create(stageCtx, repository.NewOrder{
			Number:          generateOrderNumber(),
			CustomerName:    cmd.CustomerName,
			CustomerEmail:   cmd.CustomerEmail,
			CustomerPhone:   cmd.CustomerPhone,
			ShippingAddress: cmd.ShippingAddress,
			BillingAddress:  billing,
			TotalAmount:     total,
			PaymentMethod:   payment,
			Notes:           cmd.Notes,
		})
		cancel()
		if err == nil {
			return order, nil
		}
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			u.logger.Warn("order number collision, regenerating", slog.Int("attempt", attempt+1))
			lastErr = err
			continue
		}
		return nil, fmt.Errorf("%w: create order: %w", domainErrors.ErrPersistence, err)
	}
	return nil, fmt.Errorf("%w: create order: number collisions exhausted retries: %w", domainErrors.ErrPersistence, lastErr)
}

func (u *CheckoutUseCase) createItems(ctx context.Context, orderID string, lines []OrderLine, prices map[string]float64) ([]model.OrderItem, error) {
	items := make([]repository.NewOrderItem, 0, len(lines))
	for _, line := range lines {
		price := prices[line.ProductID]
		items = append(items, repository.NewOrderItem{
			ProductID:  line.ProductID,
			Quantity:   line.Quantity,
			UnitPrice:  price,
			TotalPrice: price * float64(line.Quantity),
		})
	}

	stageCtx, cancel := u.stageContext(ctx)
	defer cancel()
	created, err := u.orders.CreateItems(stageCtx, orderID, items)
	if err != nil {
		return nil, fmt.Errorf("%w: create order items: %w", domainErrors.ErrPersistence, err)
	}
	return created, nil
}

// compensate deletes the order row left behind by a failed item insert. It
// is best-effort: a delete failure is logged and counted, never surfaced, so
// the root cause stays visible to the caller.
func (u *CheckoutUseCase) compensate(ctx context.Context, orderID string) {
	u.metrics.CompensationAttempted()

	// The request context may already be dead; the cleanup still deserves
	// its own window.
	stageCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.stageTimeout)
	defer cancel()

	if err := u.orders.Delete(stageCtx, orderID); err != nil {
		u.metrics.CompensationFailed()
		u.logger.Error("compensating order delete failed, orphan left for reaper",
			slog.String("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}
}

// decrementStock runs after the item set is committed. Failures leave the
// order placed and are only reported.
func (u *CheckoutUseCase) decrementStock(ctx context.Context, orderNumber string, lines []OrderLine) {
	for _, line := range lines {
		stageCtx, cancel := u.stageContext(ctx)
		err := u.products.DecrementStock(stageCtx, line.ProductID, line.Quantity)
		cancel()
		if err != nil {
			u.metrics.StockDecrementFailed()
			u.logger.Error("stock decrement failed after order placement",
				slog.String("order_number", orderNumber),
				slog.String("product_id", line.ProductID),
				slog.Int("quantity", line.Quantity),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Orders returns orders for the back office, newest first.
func (u *CheckoutUseCase) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.orders.List(ctx, filter)
}

// Order returns one order with its line items.
func (u *CheckoutUseCase) Order(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// Orphans returns pending zero-item orders older than olderThan.
func (u *CheckoutUseCase) Orphans(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	return u.orders.SelectOrphans(ctx, olderThan, limit)
}

// DeleteOrder removes an order row; used by the orphan reaper.
func (u *CheckoutUseCase) DeleteOrder(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

func (u *CheckoutUseCase) stageContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if u.stageTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, u.stageTimeout)
}

// generateOrderNumber builds PD-<epoch-ms>-<4 uppercase alphanumerics>.
func generateOrderNumber() string {
	var sb strings.Builder
	sb.Grow(orderNumberSuffix)
	for i := 0; i < orderNumberSuffix; i++ {
		sb.WriteByte(suffixAlphabet[rand.Intn(len(suffixAlphabet))])
	}
	return fmt.Sprintf("%s-%d-%s", orderNumberPrefix, time.Now().UnixMilli(), sb.String())
}
