package blobstore

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/config"
)

// Module exposes blob store client implementation to fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.BlobStoreAddress, p.Logger)
}
