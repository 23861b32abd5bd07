package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// Module wires a private prometheus registry and the workflow metrics.
var Module = fx.Options(
	fx.Provide(newRegistry),
	fx.Provide(func(reg *prometheus.Registry) *Metrics { return New(reg) }),
)

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	return reg
}
