package test

import (
	"context"
	"time"

	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/usecase"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn func(context.Context, usecase.PlaceOrderCommand) (*model.Order, error)
	OrdersFn     func(context.Context, repository.OrderFilter) ([]model.Order, int, error)
	OrderFn      func(context.Context, string) (*model.Order, error)
	OrphansFn    func(context.Context, time.Duration, int) ([]model.Order, error)
	DeleteFn     func(context.Context, string) error
}

// PlaceOrder delegates to the override or returns a placed pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, cmd usecase.PlaceOrderCommand) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, cmd)
	}
	return &model.Order{
		ID:            "order-1",
		Number:        "PD-1700000000000-AB12",
		CustomerName:  cmd.CustomerName,
		CustomerEmail: cmd.CustomerEmail,
		Status:        model.OrderStatusPending,
		PaymentStatus: model.PaymentStatusPending,
	}, nil
}

// Orders returns the configured listing.
func (s OrderFacadeStub) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, filter)
	}
	return []model.Order{{ID: "order-1", Number: "PD-1700000000000-AB12"}}, 1, nil
}

// Order returns one order.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Number: "PD-1700000000000-AB12"}, nil
}

// OrphanedOrders returns the configured orphan batch.
func (s OrderFacadeStub) OrphanedOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	if s.OrphansFn != nil {
		return s.OrphansFn(ctx, olderThan, limit)
	}
	return nil, nil
}

// DeleteOrder executes the configured delete handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// CatalogFacadeStub simulates product operations.
type CatalogFacadeStub struct {
	ProductsFn func(context.Context, repository.ProductFilter) ([]model.Product, int, error)
	ProductFn  func(context.Context, string) (*model.Product, error)
	CreateFn   func(context.Context, model.Product) (*model.Product, error)
	UpdateFn   func(context.Context, model.Product) (*model.Product, error)
	DeleteFn   func(context.Context, string) error
}

// Products returns the configured listing.
func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: "p1", Name: "Lamp", Price: 49.90, StockQuantity: 3}}, 1, nil
}

// Product returns one product.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Lamp", Price: 49.90}, nil
}

// CreateProduct stores a new product.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	product.ID = "p1"
	return &product, nil
}

// UpdateProduct updates an existing product.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, product)
	}
	return &product, nil
}

// DeleteProduct executes the configured delete handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// ContentFacadeStub simulates contact, quote and newsletter operations.
type ContentFacadeStub struct {
	SubmitContactFn func(context.Context, model.ContactMessage) (*model.ContactMessage, error)
	ContactsFn      func(context.Context, repository.PageFilter) ([]model.ContactMessage, int, error)
	ContactStatusFn func(context.Context, string, model.ContactStatus) error
	SubmitQuoteFn   func(context.Context, model.QuoteRequest) (*model.QuoteRequest, error)
	QuotesFn        func(context.Context, repository.PageFilter) ([]model.QuoteRequest, int, error)
	QuoteStatusFn   func(context.Context, string, model.QuoteStatus) error
	SubscribeFn     func(context.Context, string) (*model.Subscriber, error)
	UnsubscribeFn   func(context.Context, string) error
	SubscribersFn   func(context.Context, repository.PageFilter) ([]model.Subscriber, int, error)
}

// SubmitContact stores a contact message.
func (s ContentFacadeStub) SubmitContact(ctx context.Context, contact model.ContactMessage) (*model.ContactMessage, error) {
	if s.SubmitContactFn != nil {
		return s.SubmitContactFn(ctx, contact)
	}
	contact.ID = "c1"
	contact.Status = model.ContactStatusNew
	return &contact, nil
}

// Contacts returns the configured listing.
func (s ContentFacadeStub) Contacts(ctx context.Context, filter repository.PageFilter) ([]model.ContactMessage, int, error) {
	if s.ContactsFn != nil {
		return s.ContactsFn(ctx, filter)
	}
	return []model.ContactMessage{{ID: "c1", Name: "Ann", Status: model.ContactStatusNew}}, 1, nil
}

// UpdateContactStatus executes the configured status handler.
func (s ContentFacadeStub) UpdateContactStatus(ctx context.Context, id string, status model.ContactStatus) error {
	if s.ContactStatusFn != nil {
		return s.ContactStatusFn(ctx, id, status)
	}
	return nil
}

// SubmitQuote stores a quote request.
func (s ContentFacadeStub) SubmitQuote(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error) {
	if s.SubmitQuoteFn != nil {
		return s.SubmitQuoteFn(ctx, quote)
	}
	quote.ID = "q1"
	quote.Status = model.QuoteStatusNew
	return &quote, nil
}

// Quotes returns the configured listing.
func (s ContentFacadeStub) Quotes(ctx context.Context, filter repository.PageFilter) ([]model.QuoteRequest, int, error) {
	if s.QuotesFn != nil {
		return s.QuotesFn(ctx, filter)
	}
	return []model.QuoteRequest{{ID: "q1", Status: model.QuoteStatusNew}}, 1, nil
}

// UpdateQuoteStatus executes the configured status handler.
func (s ContentFacadeStub) UpdateQuoteStatus(ctx context.Context, id string, status model.QuoteStatus) error {
	if s.QuoteStatusFn != nil {
		return s.QuoteStatusFn(ctx, id, status)
	}
	return nil
}

// Subscribe stores a newsletter subscription.
func (s ContentFacadeStub) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx, email)
	}
	return &model.Subscriber{ID: "s1", Email: email, Active: true}, nil
}

// Unsubscribe executes the configured handler.
func (s ContentFacadeStub) Unsubscribe(ctx context.Context, email string) error {
	if s.UnsubscribeFn != nil {
		return s.UnsubscribeFn(ctx, email)
	}
	return nil
}

// Subscribers returns the configured listing.
func (s ContentFacadeStub) Subscribers(ctx context.Context, filter repository.PageFilter) ([]model.Subscriber, int, error) {
	if s.SubscribersFn != nil {
		return s.SubscribersFn(ctx, filter)
	}
	return []model.Subscriber{{ID: "s1", Email: "a@b.io", Active: true}}, 1, nil
}

// ProjectFacadeStub simulates portfolio operations.
type ProjectFacadeStub struct {
	ProjectsFn func(context.Context, repository.ProjectFilter) ([]model.Project, int, error)
	ProjectFn  func(context.Context, string, bool) (*model.Project, error)
	CreateFn   func(context.Context, model.Project) (*model.Project, error)
	UpdateFn   func(context.Context, model.Project) (*model.Project, error)
	DeleteFn   func(context.Context, string) error
}

// Projects returns the configured listing.
func (s ProjectFacadeStub) Projects(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, int, error) {
	if s.ProjectsFn != nil {
		return s.ProjectsFn(ctx, filter)
	}
	return []model.Project{{ID: "pr1", Title: "Loft", Published: true}}, 1, nil
}

// Project returns one project.
func (s ProjectFacadeStub) Project(ctx context.Context, id string, publishedOnly bool) (*model.Project, error) {
	if s.ProjectFn != nil {
		return s.ProjectFn(ctx, id, publishedOnly)
	}
	return &model.Project{ID: id, Title: "Loft", Published: true}, nil
}

// CreateProject stores a new project.
func (s ProjectFacadeStub) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, project)
	}
	project.ID = "pr1"
	return &project, nil
}

// UpdateProject updates an existing project.
func (s ProjectFacadeStub) UpdateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, project)
	}
	return &project, nil
}

// DeleteProject executes the configured delete handler.
func (s ProjectFacadeStub) DeleteProject(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// MediaFacadeStub simulates gallery operations.
type MediaFacadeStub struct {
	AssetsFn   func(context.Context, repository.PageFilter) ([]model.MediaAsset, int, error)
	RegisterFn func(context.Context, string, string) (*model.MediaAsset, error)
	DeleteFn   func(context.Context, string) error
}

// MediaAssets returns the configured listing.
func (s MediaFacadeStub) MediaAssets(ctx context.Context, filter repository.PageFilter) ([]model.MediaAsset, int, error) {
	if s.AssetsFn != nil {
		return s.AssetsFn(ctx, filter)
	}
	return []model.MediaAsset{{ID: "m1", Key: "gallery/loft.jpg"}}, 1, nil
}

// RegisterMedia stores a new asset record.
func (s MediaFacadeStub) RegisterMedia(ctx context.Context, key, altText string) (*model.MediaAsset, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, key, altText)
	}
	return &model.MediaAsset{ID: "m1", Key: key, AltText: altText}, nil
}

// DeleteMedia executes the configured delete handler.
func (s MediaFacadeStub) DeleteMedia(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// HealthFacadeStub reports configurable readiness.
type HealthFacadeStub struct {
	PingFn func(context.Context) error
}

// Ping delegates to the override or reports healthy.
func (s HealthFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}

// StudioFacadeStub aggregates facade dependencies for HTTP layer tests.
type StudioFacadeStub struct {
	OrderFacadeStub
	CatalogFacadeStub
	ContentFacadeStub
	ProjectFacadeStub
	MediaFacadeStub
	HealthFacadeStub
}
