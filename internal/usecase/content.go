package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/primedecor/backend/internal/domain/errors"
	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/domain/repository"
)

// ContactUseCase handles contact form submissions.
type ContactUseCase struct {
	contacts repository.ContactRepository
}

// NewContactUseCase constructs ContactUseCase.
func NewContactUseCase(contacts repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contacts: contacts}
}

// Submit stores one contact message.
func (u *ContactUseCase) Submit(ctx context.Context, contact model.ContactMessage) (*model.ContactMessage, error) {
	if strings.TrimSpace(contact.Name) == "" {
		return nil, domainErrors.NewValidation("name is required")
	}
	if !ValidateEmail(contact.Email) {
		return nil, domainErrors.NewValidation("email is not a valid email address")
	}
	if strings.TrimSpace(contact.Message) == "" {
		return nil, domainErrors.NewValidation("message is required")
	}
	return u.contacts.Create(ctx, contact)
}

// List returns contact messages, newest first.
func (u *ContactUseCase) List(ctx context.Context, filter repository.PageFilter) ([]model.ContactMessage, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.contacts.List(ctx, filter)
}

// UpdateStatus moves a message through the back-office workflow.
func (u *ContactUseCase) UpdateStatus(ctx context.Context, id string, status model.ContactStatus) error {
	switch status {
	case model.ContactStatusNew, model.ContactStatusRead, model.ContactStatusReplied:
	default:
		return domainErrors.NewValidation("unknown contact status %q", status)
	}
	return u.contacts.UpdateStatus(ctx, id, status)
}

// QuoteUseCase handles design quote requests.
type QuoteUseCase struct {
	quotes repository.QuoteRepository
}

// NewQuoteUseCase constructs QuoteUseCase.
func NewQuoteUseCase(quotes repository.QuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{quotes: quotes}
}

// Submit stores one quote request.
func (u *QuoteUseCase) Submit(ctx context.Context, quote model.QuoteRequest) (*model.QuoteRequest, error) {
	if strings.TrimSpace(quote.Name) == "" {
		return nil, domainErrors.NewValidation("name is required")
	}
	if !ValidateEmail(quote.Email) {
		return nil, domainErrors.NewValidation("email is not a valid email address")
	}
	if strings.TrimSpace(quote.ProjectType) == "" {
		return nil, domainErrors.NewValidation("project_type is required")
	}
	return u.quotes.Create(ctx, quote)
}

// List returns quote requests, newest first.
func (u *QuoteUseCase) List(ctx context.Context, filter repository.PageFilter) ([]model.QuoteRequest, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.quotes.List(ctx, filter)
}

// UpdateStatus moves a quote request through the back-office workflow.
func (u *QuoteUseCase) UpdateStatus(ctx context.Context, id string, status model.QuoteStatus) error {
	switch status {
	case model.QuoteStatusNew, model.QuoteStatusQuoted, model.QuoteStatusDeclined:
	default:
		return domainErrors.NewValidation("unknown quote status %q", status)
	}
	return u.quotes.UpdateStatus(ctx, id, status)
}

// NewsletterUseCase manages newsletter subscriptions.
type NewsletterUseCase struct {
	subscribers repository.SubscriberRepository
}

// NewNewsletterUseCase constructs NewsletterUseCase.
func NewNewsletterUseCase(subscribers repository.SubscriberRepository) *NewsletterUseCase {
	return &NewsletterUseCase{subscribers: subscribers}
}

// Subscribe adds or reactivates a subscription. Subscribing an already
// subscribed address is a no-op, not an error.
func (u *NewsletterUseCase) Subscribe(ctx context.Context, email string) (*model.Subscriber, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidateEmail(email) {
		return nil, domainErrors.NewValidation("email is not a valid email address")
	}
	return u.subscribers.Upsert(ctx, email)
}

// Unsubscribe deactivates a subscription.
func (u *NewsletterUseCase) Unsubscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !ValidateEmail(email) {
		return domainErrors.NewValidation("email is not a valid email address")
	}
	return u.subscribers.Deactivate(ctx, email)
}

// List returns subscriptions, newest first.
func (u *NewsletterUseCase) List(ctx context.Context, filter repository.PageFilter) ([]model.Subscriber, int, error) {
	filter.Limit, filter.Offset = ClampPage(filter.Limit, filter.Offset)
	return u.subscribers.List(ctx, filter)
}
