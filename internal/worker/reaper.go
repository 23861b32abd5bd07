package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/primedecor/backend/internal/domain/model"
	"github.com/primedecor/backend/internal/metrics"
)

// OrderReaperFacade exposes the subset of application functionality required
// by the reaper.
type OrderReaperFacade interface {
	OrphanedOrders(ctx context.Context, olderThan time.Duration, limit int) ([]model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
}

// Reaper periodically removes orphaned pending orders: rows whose line-item
// insert failed and whose compensating delete also failed. Compensation is
// best-effort, so these rows are an expected degraded outcome.
type Reaper struct {
	facade   OrderReaperFacade
	interval time.Duration
	minAge   time.Duration
	batch    int
	workers  int
	metrics  *metrics.Metrics
	logger   *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewReaper constructs the orphan reaper worker pool.
func NewReaper(facade OrderReaperFacade, interval, minAge time.Duration, batch, workers int, m *metrics.Metrics, logger *slog.Logger) *Reaper {
	if workers <= 0 {
		workers = 1
	}
	if batch <= 0 {
		batch = 1
	}
	return &Reaper{
		facade:   facade,
		interval: interval,
		minAge:   minAge,
		batch:    batch,
		workers:  workers,
		metrics:  m,
		logger:   logger,
		jobs:     make(chan model.Order, batch*workers),
	}
}

// Start launches background sweeping.
func (r *Reaper) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	for i := 0; i < r.workers; i++ {
		r.wg.Add(1)
		go r.worker(runCtx)
	}

	r.wg.Add(1)
	go r.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (r *Reaper) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *Reaper) dispatch(ctx context.Context) {
	defer r.wg.Done()
	defer close(r.jobs)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.fetchAndDispatch(ctx)
		}
	}
}

func (r *Reaper) fetchAndDispatch(ctx context.Context) {
	orders, err := r.facade.OrphanedOrders(ctx, r.minAge, r.batch)
	if err != nil {
		r.logger.Error("fetch orphaned orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case r.jobs <- order:
		}
	}
}

func (r *Reaper) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-r.jobs:
			if !ok {
				return
			}
			r.reap(ctx, order)
		}
	}
}

func (r *Reaper) reap(ctx context.Context, order model.Order) {
	if err := r.facade.DeleteOrder(ctx, order.ID); err != nil {
		r.logger.Error("reap orphaned order failed",
			slog.String("order_id", order.ID),
			slog.String("order_number", order.Number),
			slog.String("error", err.Error()),
		)
		return
	}
	r.metrics.OrphanReaped()
	r.logger.Info("orphaned order reaped",
		slog.String("order_id", order.ID),
		slog.String("order_number", order.Number),
	)
}
