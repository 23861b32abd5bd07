package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

const uniqueViolation = "23505"

// pgxPool is the subset of pgxpool.Pool used by the storage layer. Tests
// substitute a pgxmock pool through newPgxPool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type productRepository struct {
	storage *Storage
}

type orderRepository struct {
	storage *Storage
}

type contactRepository struct {
	storage *Storage
}

type quoteRepository struct {
	storage *Storage
}

type subscriberRepository struct {
	storage *Storage
}

type projectRepository struct {
	storage *Storage
}

type mediaRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Products() repository.ProductRepository {
	return &productRepository{storage: s}
}

func (s *Storage) Orders() repository.OrderRepository {
	return &orderRepository{storage: s}
}

func (s *Storage) Contacts() repository.ContactRepository {
	return &contactRepository{storage: s}
}

func (s *Storage) Quotes() repository.QuoteRepository {
	return &quoteRepository{storage: s}
}

func (s *Storage) Subscribers() repository.SubscriberRepository {
	return &subscriberRepository{storage: s}
}

func (s *Storage) Projects() repository.ProjectRepository {
	return &projectRepository{storage: s}
}

func (s *Storage) Media() repository.MediaRepository {
	return &mediaRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            price DOUBLE PRECISION NOT NULL,
            stock_quantity INT NOT NULL DEFAULT 0,
            image_url TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS orders (
            id TEXT PRIMARY KEY,
            order_number TEXT UNIQUE NOT NULL,
            customer_name TEXT NOT NULL,
            customer_email TEXT NOT NULL,
            customer_phone TEXT NOT NULL DEFAULT '',
            shipping_address TEXT NOT NULL,
            billing_address TEXT NOT NULL,
            total_amount DOUBLE PRECISION NOT NULL,
            payment_method TEXT NOT NULL DEFAULT 'pending',
            notes TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL,
            payment_status TEXT NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS order_items (
            id TEXT PRIMARY KEY,
            order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
            product_id TEXT NOT NULL,
            quantity INT NOT NULL,
            unit_price DOUBLE PRECISION NOT NULL,
            total_price DOUBLE PRECISION NOT NULL
        )`,
		`CREATE TABLE IF NOT EXISTS contacts (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            subject TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL,
            status TEXT NOT NULL DEFAULT 'new',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS quote_requests (
            id TEXT PRIMARY KEY,
            name TEXT NOT NULL,
            email TEXT NOT NULL,
            phone TEXT NOT NULL DEFAULT '',
            project_type TEXT NOT NULL,
            budget TEXT NOT NULL DEFAULT '',
            message TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'new',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS newsletter_subscribers (
            id TEXT PRIMARY KEY,
            email TEXT UNIQUE NOT NULL,
            active BOOLEAN NOT NULL DEFAULT TRUE,
            subscribed_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS projects (
            id TEXT PRIMARY KEY,
            title TEXT NOT NULL,
            description TEXT NOT NULL DEFAULT '',
            category TEXT NOT NULL DEFAULT '',
            location TEXT NOT NULL DEFAULT '',
            area_sqm DOUBLE PRECISION NOT NULL DEFAULT 0,
            year INT NOT NULL DEFAULT 0,
            cover_image TEXT NOT NULL DEFAULT '',
            published BOOLEAN NOT NULL DEFAULT FALSE,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
            updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS media_assets (
            id TEXT PRIMARY KEY,
            key TEXT NOT NULL,
            content_type TEXT NOT NULL DEFAULT '',
            size_bytes BIGINT NOT NULL DEFAULT 0,
            alt_text TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_orders_status ON orders(status, created_at)`,
		`CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)`,
		`CREATE INDEX IF NOT EXISTS idx_products_category ON products(category)`,
		`CREATE INDEX IF NOT EXISTS idx_projects_published ON projects(published, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

// --- ProductRepository implementation ---

const productColumns = `id, name, description, category, price, stock_quantity, image_url, created_at, updated_at`

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Price, &p.StockQuantity, &p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
}

func (r *productRepository) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (id, name, description, category, price, stock_quantity, image_url)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at, updated_at`
	product.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, product.StockQuantity, product.ImageURL,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	var p model.Product
	if err := scanProduct(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int, error) {
	var total int
	if filter.Category != "" {
		if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products WHERE category=$1`, filter.Category).Scan(&total); err != nil {
			return nil, 0, err
		}
	} else {
		if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
			return nil, 0, err
		}
	}

	var (
		rows pgx.Rows
		err  error
	)
	if filter.Category != "" {
		query := `SELECT ` + productColumns + ` FROM products WHERE category=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		rows, err = r.storage.pool.Query(ctx, query, filter.Category, filter.Limit, filter.Offset)
	} else {
		query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err = r.storage.pool.Query(ctx, query, filter.Limit, filter.Offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *productRepository) Update(ctx context.Context, product model.Product) (*model.Product, error) {
	const query = `UPDATE products
                   SET name=$2, description=$3, category=$4, price=$5, stock_quantity=$6, image_url=$7, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Category,
		product.Price, product.StockQuantity, product.ImageURL,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// DecrementStock subtracts quantity only while the remaining stock covers it.
// A zero affected-row count means the product is gone or under-stocked; both
// surface as InsufficientStockError because no partial decrement happened.
func (r *productRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	const query = `UPDATE products
                   SET stock_quantity = stock_quantity - $2, updated_at = NOW()
                   WHERE id=$1 AND stock_quantity >= $2`
	tag, err := r.storage.pool.Exec(ctx, query, id, quantity)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.InsufficientStockError{ProductID: id}
	}
	return nil
}

// --- OrderRepository implementation ---

const orderColumns = `id, order_number, customer_name, customer_email, customer_phone, shipping_address, billing_address, total_amount, payment_method, notes, status, payment_status, created_at, updated_at`

func scanOrder(row pgx.Row, o *model.Order) error {
	return row.Scan(&o.ID, &o.Number, &o.CustomerName, &o.CustomerEmail, &o.CustomerPhone,
		&o.ShippingAddress, &o.BillingAddress, &o.TotalAmount, &o.PaymentMethod, &o.Notes,
		&o.Status, &o.PaymentStatus, &o.CreatedAt, &o.UpdatedAt)
}

func (r *orderRepository) Create(ctx context.Context, order repository.NewOrder) (*model.Order, error) {
	const query = `INSERT INTO orders (id, order_number, customer_name, customer_email, customer_phone,
                                       shipping_address, billing_address, total_amount, payment_method, notes,
                                       status, payment_status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   RETURNING created_at, updated_at`
	created := model.Order{
		ID:              uuid.NewString(),
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
	}
	err := r.storage.pool.QueryRow(ctx, query,
		created.ID, created.Number, created.CustomerName, created.CustomerEmail, created.CustomerPhone,
		created.ShippingAddress, created.BillingAddress, created.TotalAmount, created.PaymentMethod, created.Notes,
		created.Status, created.PaymentStatus,
	).Scan(&created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &created, nil
}

// CreateItems inserts all line items inside one transaction so a failure
// leaves no partial item set behind. The parent order row is still the
// caller's responsibility.
func (r *orderRepository) CreateItems(ctx context.Context, orderID string, items []repository.NewOrderItem) ([]model.OrderItem, error) {
	const query = `INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total_price)
                   VALUES ($1, $2, $3, $4, $5, $6)`

	created := make([]model.OrderItem, 0, len(items))
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		for _, item := range items {
			row := model.OrderItem{
				ID:         uuid.NewString(),
				OrderID:    orderID,
				ProductID:  item.ProductID,
				Quantity:   item.Quantity,
				UnitPrice:  item.UnitPrice,
				TotalPrice: item.TotalPrice,
			}
			if _, err := tx.Exec(ctx, query, row.ID, row.OrderID, row.ProductID, row.Quantity, row.UnitPrice, row.TotalPrice); err != nil {
				return err
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (r *orderRepository) Delete(ctx context.Context, id string) error {
	// ON DELETE CASCADE removes any line items with the order row.
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM orders WHERE id=$1`, id)
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	var o model.Order
	if err := scanOrder(r.storage.pool.QueryRow(ctx, query, id), &o); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}

	items, err := r.itemsForOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Items = items
	return &o, nil
}

func (r *orderRepository) itemsForOrder(ctx context.Context, orderID string) ([]model.OrderItem, error) {
	const query = `SELECT id, order_id, product_id, quantity, unit_price, total_price
                   FROM order_items WHERE order_id=$1`
	rows, err := r.storage.pool.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var it model.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.TotalPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	var total int
	if filter.Status != "" {
		if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders WHERE status=$1`, filter.Status).Scan(&total); err != nil {
			return nil, 0, err
		}
	} else {
		if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&total); err != nil {
			return nil, 0, err
		}
	}

	var (
		rows pgx.Rows
		err  error
	)
	if filter.Status != "" {
		query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		rows, err = r.storage.pool.Query(ctx, query, filter.Status, filter.Limit, filter.Offset)
	} else {
		query := `SELECT ` + orderColumns + ` FROM orders ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		rows, err = r.storage.pool.Query(ctx, query, filter.Limit, filter.Offset)
	}
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, 0, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// SelectOrphans returns pending orders older than olderThan that have no
// line items. These are left behind when compensation fails mid-workflow.
func (r *orderRepository) SelectOrphans(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + `
              FROM orders o
              WHERE o.status='pending'
                AND o.created_at < NOW() - make_interval(secs => $1)
                AND NOT EXISTS (SELECT 1 FROM order_items i WHERE i.order_id = o.id)
              ORDER BY o.created_at
              LIMIT $2
              FOR UPDATE SKIP LOCKED`
	rows, err := r.storage.pool.Query(ctx, query, olderThan.Seconds(), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		var o model.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- ContactRepository implementation ---

func (r *contactRepository) Create(ctx context.Context, contact model.ContactMessage) (*model.ContactMessage, error) {
	const query = `INSERT INTO contacts (id, name, email, phone, subject, message, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7)
                   RETURNING created_at`
	contact.ID = uuid.NewString()
	contact.Status = model.ContactStatusNew
	err := r.storage.pool.QueryRow(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Phone, contact.Subject, contact.Message, contact.Status,
	).Scan(&contact.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *contactRepository) List(ctx context.Context, filter repository.PageFilter) ([]model.ContactMessage, int, error) {
	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, name, email, phone, subject, message, status, created_at
                   FROM contacts ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.ContactMessage
	for rows.Next() {
		var c model.ContactMessage
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Subject, &c.Message, &c.Status, &c.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *contactRepository) UpdateStatus(ctx context.Context, id string, status model.ContactStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE contacts SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- QuoteRepository implementation ---

func (r *quoteRepository) Create(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error) {
	const query = `INSERT INTO quote_requests (id, name, email, phone, project_type, budget, message, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
                   RETURNING created_at`
	quote.ID = uuid.NewString()
	quote.Status = model.QuoteStatusNew
	err := r.storage.pool.QueryRow(ctx, query,
		quote.ID, quote.Name, quote.Email, quote.Phone, quote.ProjectType, quote.Budget, quote.Message, quote.Status,
	).Scan(&quote.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

func (r *quoteRepository) List(ctx context.Context, filter repository.PageFilter) ([]model.QuoteRequest, int, error) {
	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM quote_requests`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, name, email, phone, project_type, budget, message, status, created_at
                   FROM quote_requests ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.QuoteRequest
	for rows.Next() {
		var q model.QuoteRequest
		if err := rows.Scan(&q.ID, &q.Name, &q.Email, &q.Phone, &q.ProjectType, &q.Budget, &q.Message, &q.Status, &q.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, q)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id string, status model.QuoteStatus) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE quote_requests SET status=$2 WHERE id=$1`, id, status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- SubscriberRepository implementation ---

func (r *subscriberRepository) Upsert(ctx context.Context, email string) (*model.Subscriber, error) {
	const query = `INSERT INTO newsletter_subscribers (id, email, active)
                   VALUES ($1, $2, TRUE)
                   ON CONFLICT (email) DO UPDATE SET active = TRUE
                   RETURNING id, email, active, subscribed_at`
	var sub model.Subscriber
	err := r.storage.pool.QueryRow(ctx, query, uuid.NewString(), email).
		Scan(&sub.ID, &sub.Email, &sub.Active, &sub.SubscribedAt)
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriberRepository) Deactivate(ctx context.Context, email string) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE newsletter_subscribers SET active = FALSE WHERE email=$1`, email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *subscriberRepository) List(ctx context.Context, filter repository.PageFilter) ([]model.Subscriber, int, error) {
	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM newsletter_subscribers`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, email, active, subscribed_at
                   FROM newsletter_subscribers ORDER BY subscribed_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.Email, &s.Active, &s.SubscribedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

// --- ProjectRepository implementation ---

const projectColumns = `id, title, description, category, location, area_sqm, year, cover_image, published, created_at, updated_at`

func scanProject(row pgx.Row, p *model.Project) error {
	return row.Scan(&p.ID, &p.Title, &p.Description, &p.Category, &p.Location, &p.AreaSqm, &p.Year, &p.CoverImage, &p.Published, &p.CreatedAt, &p.UpdatedAt)
}

func (r *projectRepository) Create(ctx context.Context, project model.Project) (*model.Project, error) {
	const query = `INSERT INTO projects (id, title, description, category, location, area_sqm, year, cover_image, published)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                   RETURNING created_at, updated_at`
	project.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.Category, project.Location,
		project.AreaSqm, project.Year, project.CoverImage, project.Published,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id=$1`
	var p model.Project
	if err := scanProject(r.storage.pool.QueryRow(ctx, query, id), &p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *projectRepository) List(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, int, error) {
	where := ""
	args := []any{}
	if filter.PublishedOnly {
		where = " WHERE published = TRUE"
	}
	if filter.Category != "" {
		if where == "" {
			where = " WHERE category=$1"
		} else {
			where += " AND category=$1"
		}
		args = append(args, filter.Category)
	}

	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM projects`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limitPos := len(args) + 1
	query := fmt.Sprintf(`SELECT `+projectColumns+` FROM projects`+where+` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, limitPos, limitPos+1)
	args = append(args, filter.Limit, filter.Offset)
	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.Project
	for rows.Next() {
		var p model.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, 0, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *projectRepository) Update(ctx context.Context, project model.Project) (*model.Project, error) {
	const query = `UPDATE projects
                   SET title=$2, description=$3, category=$4, location=$5, area_sqm=$6, year=$7, cover_image=$8, published=$9, updated_at=NOW()
                   WHERE id=$1
                   RETURNING created_at, updated_at`
	err := r.storage.pool.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.Category, project.Location,
		project.AreaSqm, project.Year, project.CoverImage, project.Published,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM projects WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// --- MediaRepository implementation ---

func (r *mediaRepository) Create(ctx context.Context, asset model.MediaAsset) (*model.MediaAsset, error) {
	const query = `INSERT INTO media_assets (id, key, content_type, size_bytes, alt_text)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING created_at`
	asset.ID = uuid.NewString()
	err := r.storage.pool.QueryRow(ctx, query,
		asset.ID, asset.Key, asset.ContentType, asset.SizeBytes, asset.AltText,
	).Scan(&asset.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

func (r *mediaRepository) GetByID(ctx context.Context, id string) (*model.MediaAsset, error) {
	const query = `SELECT id, key, content_type, size_bytes, alt_text, created_at FROM media_assets WHERE id=$1`
	var a model.MediaAsset
	err := r.storage.pool.QueryRow(ctx, query, id).
		Scan(&a.ID, &a.Key, &a.ContentType, &a.SizeBytes, &a.AltText, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

func (r *mediaRepository) List(ctx context.Context, filter repository.PageFilter) ([]model.MediaAsset, int, error) {
	var total int
	if err := r.storage.pool.QueryRow(ctx, `SELECT COUNT(*) FROM media_assets`).Scan(&total); err != nil {
		return nil, 0, err
	}

	const query = `SELECT id, key, content_type, size_bytes, alt_text, created_at
                   FROM media_assets ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	rows, err := r.storage.pool.Query(ctx, query, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var result []model.MediaAsset
	for rows.Next() {
		var a model.MediaAsset
		if err := rows.Scan(&a.ID, &a.Key, &a.ContentType, &a.SizeBytes, &a.AltText, &a.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return result, total, nil
}

func (r *mediaRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM media_assets WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.pool.Ping(ctx)
}

// Logger returns storage logger.
func (s *Storage) Logger() *slog.Logger {
	return s.logger
}
