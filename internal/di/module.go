package di

import (
	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/adapter/blobstore"
	"github.com/primedecor/backend/internal/app"
	"github.com/primedecor/backend/internal/config"
	"github.com/primedecor/backend/internal/logger"
	"github.com/primedecor/backend/internal/metrics"
	"github.com/primedecor/backend/internal/pkg/auth"
	"github.com/primedecor/backend/internal/server/http/handlers"
	"github.com/primedecor/backend/internal/server/http/router"
	"github.com/primedecor/backend/internal/storage/postgres"
	"github.com/primedecor/backend/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		metrics.Module,
		postgres.Module,
		blobstore.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.Pinger { return s }),
		fx.Provide(func(f *app.StudioFacade) handlers.StudioFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
