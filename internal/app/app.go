package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/config"
	"github.com/primedecor/backend/internal/metrics"
	"github.com/primedecor/backend/internal/worker"
)

// Module wires application services, runtime components, and lifecycle hooks.
var Module = fx.Options(
	fx.Provide(
		NewStudioFacade,
		newHTTPServer,
		newReaper,
	),
	fx.Invoke(registerLifecycle),
)

type serverParams struct {
	fx.In

	Config *config.Config
	Router *gin.Engine
}

func newHTTPServer(p serverParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type reaperParams struct {
	fx.In

	Facade  *StudioFacade
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

func newReaper(p reaperParams) *worker.Reaper {
	return worker.NewReaper(
		p.Facade,
		p.Config.ReaperInterval,
		p.Config.ReaperMinAge,
		p.Config.ReaperBatch,
		p.Config.ReaperWorkerCount,
		p.Metrics,
		p.Logger,
	)
}

type lifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Reaper     *worker.Reaper
	Config     *config.Config
}

func registerLifecycle(p lifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting primedecor backend", slog.String("addr", p.Server.Addr))
			p.Reaper.Start(ctx)
			go func() {
				if err := p.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					p.Logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = p.Shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Reaper.Stop()

			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, p.Config.ShutdownTimeout)
			}
			defer cancel()

			if err := p.Server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			p.Logger.Info("primedecor backend stopped")
			return nil
		},
	})
}
