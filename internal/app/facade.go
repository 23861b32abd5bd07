package app

import (
	"context"
	"time"

	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/usecase"
)

// Pinger reports storage health.
type Pinger interface {
	HealthCheck(ctx context.Context) error
}

// StudioFacade aggregates the business use cases behind one surface used by
// HTTP handlers and the background worker.
type StudioFacade struct {
	checkout   *usecase.CheckoutUseCase
	catalog    *usecase.CatalogUseCase
	contacts   *usecase.ContactUseCase
	quotes     *usecase.QuoteUseCase
	newsletter *usecase.NewsletterUseCase
	projects   *usecase.ProjectUseCase
	media      *usecase.MediaUseCase
	health     Pinger
}

func NewStudioFacade(
	checkout *usecase.CheckoutUseCase,
	catalog *usecase.CatalogUseCase,
	contacts *usecase.ContactUseCase,
	quotes *usecase.QuoteUseCase,
	newsletter *usecase.NewsletterUseCase,
	projects *usecase.ProjectUseCase,
	media *usecase.MediaUseCase,
	health Pinger,
) *StudioFacade {
	return &StudioFacade{
		checkout:   checkout,
		catalog:    catalog,
		contacts:   contacts,
		quotes:     quotes,
		newsletter: newsletter,
		projects:   projects,
		media:      media,
		health:     health,
	}
}

func (f *StudioFacade) PlaceOrder(ctx context.Context, cmd usecase.PlaceOrderCommand) (*model.Order, error) {
	return f.checkout.PlaceOrder(ctx, cmd)
}

func (f *StudioFacade) Orders(ctx context.Context, filter repository.OrderFilter) ([]model.Order, int, error) {
	return f.checkout.Orders(ctx, filter)
}

func (f *StudioFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.checkout.Order(ctx, id)
}

func (f *StudioFacade) OrphanedOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error) {
	return f.checkout.Orphans(ctx, olderThan, limit)
}

func (f *StudioFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.checkout.DeleteOrder(ctx, id)
}

func (f *StudioFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, int, error) {
	return f.catalog.List(ctx, filter)
}

func (f *StudioFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.catalog.Get(ctx, id)
}

func (f *StudioFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.Create(ctx, product)
}

func (f *StudioFacade) UpdateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.catalog.Update(ctx, product)
}

func (f *StudioFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.catalog.Delete(ctx, id)
}

func (f *StudioFacade) SubmitContact(ctx context.Context, contact model.ContactMessage) (*model.ContactMessage, error) {
	return f.contacts.Submit(ctx, contact)
}

func (f *StudioFacade) Contacts(ctx context.Context, filter repository.PageFilter) ([]model.ContactMessage, int, error) {
	return f.contacts.List(ctx, filter)
}

func (f *StudioFacade) UpdateContactStatus(ctx context.Context, id string, status model.ContactStatus) error {
	return f.contacts.UpdateStatus(ctx, id, status)
}

func (f *StudioFacade) SubmitQuote(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error) {
	return f.quotes.Submit(ctx, quote)
}

func (f *StudioFacade) Quotes(ctx context.Context, filter repository.PageFilter) ([]model.QuoteRequest, int, error) {
	return f.quotes.List(ctx, filter)
}

func (f *StudioFacade) UpdateQuoteStatus(ctx context.Context, id string, status model.QuoteStatus) error {
	return f.quotes.UpdateStatus(ctx, id, status)
}

func (f *StudioFacade) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	return f.newsletter.Subscribe(ctx, email)
}

func (f *StudioFacade) Unsubscribe(ctx context.Context, email string) error {
	return f.newsletter.Unsubscribe(ctx, email)
}

func (f *StudioFacade) Subscribers(ctx context.Context, filter repository.PageFilter) ([]model.Subscriber, int, error) {
	return f.newsletter.List(ctx, filter)
}

func (f *StudioFacade) Projects(ctx context.Context, filter repository.ProjectFilter) ([]model.Project, int, error) {
	return f.projects.List(ctx, filter)
}

func (f *StudioFacade) Project(ctx context.Context, id string, publishedOnly bool) (*model.Project, error) {
	return f.projects.Get(ctx, id, publishedOnly)
}

func (f *StudioFacade) CreateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	return f.projects.Create(ctx, project)
}

func (f *StudioFacade) UpdateProject(ctx context.Context, project model.Project) (*model.Project, error) {
	return f.projects.Update(ctx, project)
}

func (f *StudioFacade) DeleteProject(ctx context.Context, id string) error {
	return f.projects.Delete(ctx, id)
}

func (f *StudioFacade) MediaAssets(ctx context.Context, filter repository.PageFilter) ([]model.MediaAsset, int, error) {
	return f.media.List(ctx, filter)
}

func (f *StudioFacade) RegisterMedia(ctx context.Context, key, altText string) (*model.MediaAsset, error) {
	return f.media.Register(ctx, key, altText)
}

func (f *StudioFacade) DeleteMedia(ctx context.Context, id string) error {
	return f.media.Delete(ctx, id)
}

func (f *StudioFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
