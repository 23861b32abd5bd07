package postgres

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/config"
	"github.com/primedecor/backend/internal/domain/repository"
)

// Module wires PostgreSQL storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.ProductRepository { return s.Products() },
		func(s *Storage) repository.OrderRepository { return s.Orders() },
		func(s *Storage) repository.ContactRepository { return s.Contacts() },
		func(s *Storage) repository.QuoteRepository { return s.Quotes() },
		func(s *Storage) repository.SubscriberRepository { return s.Subscribers() },
		func(s *Storage) repository.ProjectRepository { return s.Projects() },
		func(s *Storage) repository.MediaRepository { return s.Media() },
	),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
