package auth

import (
	"go.uber.org/fx"

	"github.com/primedecor/backend/internal/config"
)

// Module exposes the admin gate to fx graphs.
var Module = fx.Provide(func(cfg *config.Config) Gate {
	return NewStaticTokenGate(cfg.AdminToken)
})
