package repository

import (
	"context"

	"github.com/primedecor/backend/internal/domain/model"
)

// PageFilter is plain limit/offset pagination shared by content listings.
type PageFilter struct {
	Limit  int
	Offset int
}

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, contact model.ContactMessage) (*model.ContactMessage, error)
	List(ctx context.Context, filter PageFilter) ([]model.ContactMessage, int, error)
	UpdateStatus(ctx context.Context, id string, status model.ContactStatus) error
}

// QuoteRepository persists quote requests.
type QuoteRepository interface {
	Create(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error)
	List(ctx context.Context, filter PageFilter) ([]model.QuoteRequest, int, error)
	UpdateStatus(ctx context.Context, id string, status model.QuoteStatus) error
}

// SubscriberRepository persists newsletter subscriptions. Upsert is
// idempotent on email and reactivates an unsubscribed row.
type SubscriberRepository interface {
	Upsert(ctx context.Context, email string) (*model.Subscriber, error)
	Deactivate(ctx context.Context, email string) error
	List(ctx context.Context, filter PageFilter) ([]model.Subscriber, int, error)
}
