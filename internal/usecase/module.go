package usecase

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/config"
	"github.com/primedecor/backend/internal/domain/repository"
	"github.com/primedecor/backend/internal/metrics"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	newCheckoutUseCase,
	NewCatalogUseCase,
	NewContactUseCase,
	NewQuoteUseCase,
	NewNewsletterUseCase,
	NewProjectUseCase,
	NewMediaUseCase,
)

type checkoutParams struct {
	fx.In

	Orders   repository.OrderRepository
	Products repository.ProductRepository
	Metrics  *metrics.Metrics
	Config   *config.Config
	Logger   *slog.Logger
}

func newCheckoutUseCase(p checkoutParams) *CheckoutUseCase {
	return NewCheckoutUseCase(p.Orders, p.Products, p.Metrics, p.Config.StageTimeout, p.Logger)
}
