package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds order workflow counters.
type Metrics struct {
	ordersPlaced           prometheus.Counter
	orderFailures          *prometheus.CounterVec
	compensations          prometheus.Counter
	compensationFailures   prometheus.Counter
	stockDecrementFailures prometheus.Counter
	orphansReaped          prometheus.Counter
}

// Failure reasons recorded on the order failure counter.
const (
	ReasonValidation        = "validation"
	ReasonNotFound          = "not_found"
	ReasonInsufficientStock = "insufficient_stock"
	ReasonPersistence       = "persistence"
)

// New creates workflow metrics registered on the given registerer.
func New(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersPlaced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "primedecor_orders_placed_total",
			Help: "Total number of orders placed successfully",
		}),
		orderFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "primedecor_order_failures_total",
			Help: "Total number of failed order placements by reason",
		}, []string{"reason"}),
		compensations: registerCounter(registerer, prometheus.CounterOpts{
			Name: "primedecor_order_compensations_total",
			Help: "Total number of compensating order deletions attempted",
		}),
		compensationFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "primedecor_order_compensation_failures_total",
			Help: "Total number of compensating deletions that failed, leaving an orphaned order",
		}),
		stockDecrementFailures: registerCounter(registerer, prometheus.CounterOpts{
			Name: "primedecor_stock_decrement_failures_total",
			Help: "Total number of stock decrements that failed after order placement",
		}),
		orphansReaped: registerCounter(registerer, prometheus.CounterOpts{
			Name: "primedecor_orphan_orders_reaped_total",
			Help: "Total number of orphaned pending orders removed by the reaper",
		}),
	}
}

func (m *Metrics) OrderPlaced() {
	m.ordersPlaced.Inc()
}

func (m *Metrics) OrderFailed(reason string) {
	m.orderFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) CompensationAttempted() {
	m.compensations.Inc()
}

func (m *Metrics) CompensationFailed() {
	m.compensationFailures.Inc()
}

func (m *Metrics) StockDecrementFailed() {
	m.stockDecrementFailures.Inc()
}

func (m *Metrics) OrphanReaped() {
	m.orphansReaped.Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if asAlreadyRegistered(err, &already) {
			return already.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if asAlreadyRegistered(err, &already) {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func asAlreadyRegistered(err error, target *prometheus.AlreadyRegisteredError) bool {
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		*target = are
		return true
	}
	return false
}
