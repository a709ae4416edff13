package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Chen-HR/SDD-BreakfastOrderingSystem-Practice/internal/domain/model"
)

// KitchenFacade exposes the subset of application functionality required by the dispatcher.
type KitchenFacade interface {
	ClaimPendingOrders(ctx context.Context, limit int) ([]model.Order, error)
}

// KitchenDispatcher periodically claims freshly placed orders for
// preparation and fans them out to a bounded worker pool. Claiming
// already flips the order to processing inside one transaction, so a
// crashed dispatcher never leaves half-claimed work.
type KitchenDispatcher struct {
	facade       KitchenFacade
	pollInterval time.Duration
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Order
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewKitchenDispatcher constructs the dispatcher worker pool.
func NewKitchenDispatcher(facade KitchenFacade, pollInterval time.Duration, batchSize, workers int, logger *slog.Logger) *KitchenDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &KitchenDispatcher{
		facade:       facade,
		pollInterval: pollInterval,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Order, batchSize*workers),
	}
}

// Start launches background processing.
func (d *KitchenDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *KitchenDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *KitchenDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.claimAndDispatch(ctx)
		}
	}
}

func (d *KitchenDispatcher) claimAndDispatch(ctx context.Context) {
	orders, err := d.facade.ClaimPendingOrders(ctx, d.batchSize)
	if err != nil {
		d.logger.Error("claim pending orders failed", slog.String("error", err.Error()))
		return
	}
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- order:
		}
	}
}

func (d *KitchenDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case order, ok := <-d.jobs:
			if !ok {
				return
			}
			d.handleOrder(order)
		}
	}
}

func (d *KitchenDispatcher) handleOrder(order model.Order) {
	d.logger.Info("order accepted for preparation",
		slog.String("number", order.Number),
		slog.Int64("order_id", order.ID),
		slog.Int("items", len(order.Items)),
	)
}
