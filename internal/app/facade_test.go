package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/metrics"
	testhelpers "github.com/primedecor/backend/internal/test"
	"github.com/primedecor/backend/internal/usecase"
)

func newFacade(pinger testhelpers.PingerStub) (*StudioFacade, *testhelpers.OrderRepositoryStub, *testhelpers.ProductRepositoryStub) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	m := metrics.New(prometheus.NewRegistry())

	orders := &testhelpers.OrderRepositoryStub{}
	products := &testhelpers.ProductRepositoryStub{Products: map[string]model.Product{
		"P1": {ID: "P1", Name: "Lamp", Price: 100, StockQuantity: 5},
	}}

	checkout := usecase.NewCheckoutUseCase(orders, products, m, time.Second, logger)
	facade := NewStudioFacade(
		checkout,
		usecase.NewCatalogUseCase(products),
		usecase.NewContactUseCase(nil),
		usecase.NewQuoteUseCase(nil),
		usecase.NewNewsletterUseCase(nil),
		usecase.NewProjectUseCase(nil),
		nil,
		pinger,
	)
	return facade, orders, products
}

func TestStudioFacadePlaceOrder(t *testing.T) {
	facade, _, products := newFacade(testhelpers.PingerStub{})

	order, err := facade.PlaceOrder(context.Background(), usecase.PlaceOrderCommand{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		Items:           []usecase.OrderLine{{ProductID: "P1", Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("place order returned error: %v", err)
	}
	if order.TotalAmount != 200 {
		t.Fatalf("expected total 200, got %v", order.TotalAmount)
	}
	if got := products.Products["P1"].StockQuantity; got != 3 {
		t.Fatalf("expected stock 3 after decrement, got %d", got)
	}
}

func TestStudioFacadeOrderDelegation(t *testing.T) {
	facade, orders, _ := newFacade(testhelpers.PingerStub{})

	orders.SelectOrphansFn = func(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
		if olderThan != 15*time.Minute || limit != 32 {
			t.Fatalf("unexpected orphan query %v %d", olderThan, limit)
		}
		return []model.Order{{ID: "orphan-1"}}, nil
	}

	orphans, err := facade.OrphanedOrders(context.Background(), 15*time.Minute, 32)
	if err != nil {
		t.Fatalf("orphaned orders returned error: %v", err)
	}
	if len(orphans) != 1 || orphans[0].ID != "orphan-1" {
		t.Fatalf("unexpected orphans %+v", orphans)
	}

	if err := facade.DeleteOrder(context.Background(), "orphan-1"); err != nil {
		t.Fatalf("delete order returned error: %v", err)
	}
	if got := orders.DeletedIDs(); len(got) != 1 || got[0] != "orphan-1" {
		t.Fatalf("expected orphan-1 deletion recorded, got %v", got)
	}

	listing, total, err := facade.Orders(context.Background(), repository.OrderFilter{})
	if err != nil {
		t.Fatalf("orders returned error: %v", err)
	}
	if total != 1 || len(listing) != 1 {
		t.Fatalf("unexpected listing %v total %d", listing, total)
	}
}

func TestStudioFacadePing(t *testing.T) {
	facade, _, _ := newFacade(testhelpers.PingerStub{})
	if err := facade.Ping(context.Background()); err != nil {
		t.Fatalf("ping returned error: %v", err)
	}

	down := errors.New("db down")
	facade, _, _ = newFacade(testhelpers.PingerStub{Err: down})
	if err := facade.Ping(context.Background()); !errors.Is(err, down) {
		t.Fatalf("expected ping error, got %v", err)
	}
}
