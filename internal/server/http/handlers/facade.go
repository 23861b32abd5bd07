package handlers

import (
	"context"
	"time"

	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/usecase"
)

// OrderFacade describes order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, cmd usecase.PlaceOrderCommand) (*model.Order, error)
	Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	OrphanedOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// CatalogFacade describes product catalog operations.
type CatalogFacade interface {
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// ContentFacade covers contact messages, quote requests and the newsletter.
type ContentFacade interface {
	SubmitContact(ctx context.Context, contact model.ContactMessage) (*model.ContactMessage, error)
	Contacts(ctx context.Context, filter repository.PageFilter) ([]model.ContactMessage, int, error)
	UpdateContactStatus(ctx context.Context, id string, status model.ContactStatus) error
	SubmitQuote(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error)
	Quotes(ctx context.Context, filter repository.PageFilter) ([]model.QuoteRequest, int, error)
	UpdateQuoteStatus(ctx context.Context, id string, status model.QuoteStatus) error
	Subscribe(ctx context.Context, email string) (*model.Subscriber, error)
	Unsubscribe(ctx context.Context, email string) error
	Subscribers(ctx context.Context, filter repository.PageFilter) ([]model.Subscriber, int, error)
}

// ProjectFacade describes portfolio operations.
type ProjectFacade interface {
	Projects(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, int, error)
	Project(ctx context.Context, id string, publishedOnly bool) (*model.Project, error)
	CreateProject(ctx context.Context, project model.Project) (*model.Project, error)
	UpdateProject(ctx context.Context, project model.Project) (*model.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// MediaFacade describes gallery asset operations.
type MediaFacade interface {
	MediaAssets(ctx context.Context, filter repository.PageFilter) ([]model.MediaAsset, int, error)
	RegisterMedia(ctx context.Context, key, altText string) (*model.MediaAsset, error)
	DeleteMedia(ctx context.Context, id string) error
}

// HealthFacade reports readiness of the service dependencies.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// StudioFacade aggregates the full set of operations used across handlers.
type StudioFacade interface {
	OrderFacade
	CatalogFacade
	ContentFacade
	ProjectFacade
	MediaFacade
	HealthFacade
}
