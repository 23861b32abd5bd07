package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
		"CREATE TABLE IF NOT EXISTS contacts",
		"CREATE TABLE IF NOT EXISTS quote_requests",
		"CREATE TABLE IF NOT EXISTS newsletter_subscribers",
		"CREATE TABLE IF NOT EXISTS projects",
		"CREATE TABLE IF NOT EXISTS media_assets",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	indexStatements := []string{
		"CREATE INDEX IF NOT EXISTS idx_orders_status",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order",
		"CREATE INDEX IF NOT EXISTS idx_products_category",
		"CREATE INDEX IF NOT EXISTS idx_projects_published",
	}
	for _, stmt := range indexStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func TestNewParseError(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if _, err := New(context.Background(), ":://bad", logger); err == nil {
		t.Fatal("expected error for malformed dsn")
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	expectSchema(mock)
	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("initSchema returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS products").WillReturnError(errors.New("boom"))
	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

func TestOrderCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(
			pgxmockv3.AnyArg(), "PD-1700000000000-AB12", "Jane Doe", "jane@example.com", "",
			"1 Main St", "1 Main St", 200.0, "pending", "",
			model.OrderStatusPending, model.PaymentStatusPending,
		).
		WillReturnRows(pgxmockv3.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	order, err := storage.Orders().Create(context.Background(), repository.NewOrder{
		Number:          "PD-1700000000000-AB12",
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		ShippingAddress: "1 Main St",
		BillingAddress:  "1 Main St",
		TotalAmount:     200,
		PaymentMethod:   "pending",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if order.ID == "" {
		t.Fatal("expected generated order id")
	}
	if order.Number != "PD-1700000000000-AB12" {
		t.Fatalf("unexpected order number %q", order.Number)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreateNumberCollision(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
		).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})

	_, err := storage.Orders().Create(context.Background(), repository.NewOrder{Number: "PD-1-XXXX"})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestOrderCreateItemsCommitsTransaction(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
		).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
		).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	items, err := storage.Orders().CreateItems(context.Background(), "order-1", []repository.NewOrderItem{
		{ProductID: "P1", Quantity: 2, UnitPrice: 100, TotalPrice: 200},
		{ProductID: "P2", Quantity: 1, UnitPrice: 50, TotalPrice: 50},
	})
	if err != nil {
		t.Fatalf("CreateItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].OrderID != "order-1" || items[0].ID == "" {
		t.Fatalf("unexpected item %+v", items[0])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderCreateItemsRollsBackOnFailure(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
		).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
			pgxmockv3.AnyArg(), pgxmockv3.AnyArg(), pgxmockv3.AnyArg(),
		).
		WillReturnError(errors.New("constraint violated"))
	mock.ExpectRollback()

	_, err := storage.Orders().CreateItems(context.Background(), "order-1", []repository.NewOrderItem{
		{ProductID: "P1", Quantity: 2, UnitPrice: 100, TotalPrice: 200},
		{ProductID: "P2", Quantity: 1, UnitPrice: 50, TotalPrice: 50},
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderDelete(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("DELETE FROM orders").
		WithArgs("order-1").
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))

	if err := storage.Orders().Delete(context.Background(), "order-1"); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderSelectOrphans(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	rows := pgxmockv3.NewRows([]string{
		"id", "order_number", "customer_name", "customer_email", "customer_phone",
		"shipping_address", "billing_address", "total_amount", "payment_method", "notes",
		"status", "payment_status", "created_at", "updated_at",
	}).AddRow("order-1", "PD-1-XXXX", "Jane", "jane@example.com", "",
		"1 Main St", "1 Main St", 200.0, "pending", "",
		model.OrderStatusPending, model.PaymentStatusPending, now, now)

	mock.ExpectQuery(`FROM orders o(?s:.*)FOR UPDATE SKIP LOCKED`).
		WithArgs(float64(900), 32).
		WillReturnRows(rows)

	orphans, err := storage.Orders().SelectOrphans(context.Background(), 15*time.Minute, 32)
	if err != nil {
		t.Fatalf("SelectOrphans returned error: %v", err)
	}
	if len(orphans) != 1 || orphans[0].ID != "order-1" {
		t.Fatalf("unexpected orphans %+v", orphans)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductGetByIDNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectQuery("FROM products WHERE id").
		WithArgs("p404").
		WillReturnError(pgx.ErrNoRows)

	_, err := storage.Products().GetByID(context.Background(), "p404")
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductDecrementStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE products").
		WithArgs("P1", 2).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))

	if err := storage.Products().DecrementStock(context.Background(), "P1", 2); err != nil {
		t.Fatalf("DecrementStock returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductDecrementStockInsufficient(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE products").
		WithArgs("P2", 5).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Products().DecrementStock(context.Background(), "P2", 5)
	if !errors.Is(err, domainErrors.ErrInsufficientStock) {
		t.Fatalf("expected insufficient stock error, got %v", err)
	}
	if err.Error() != "Insufficient stock for product P2" {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestContactUpdateStatusNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectExec("UPDATE contacts").
		WithArgs("c404", model.ContactStatusRead).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))

	err := storage.Contacts().UpdateStatus(context.Background(), "c404", model.ContactStatusRead)
	if !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubscriberUpsert(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO newsletter_subscribers").
		WithArgs(pgxmockv3.AnyArg(), "ann@example.com").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "email", "active", "subscribed_at"}).
			AddRow("s1", "ann@example.com", true, now))

	sub, err := storage.Subscribers().Upsert(context.Background(), "ann@example.com")
	if err != nil {
		t.Fatalf("Upsert returned error: %v", err)
	}
	if !sub.Active || sub.Email != "ann@example.com" {
		t.Fatalf("unexpected subscriber %+v", sub)
	}
}

func TestHealthCheck(t *testing.T) {
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	defer mock.Close()

	mock.ExpectPing()
	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("HealthCheck returned error: %v", err)
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	wantErr := errors.New("inner failure")
	err := storage.WithinTransaction(context.Background(), func(pgx.Tx) error {
		return wantErr
	})
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
