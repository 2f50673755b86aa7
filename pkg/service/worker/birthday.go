package worker

import (
	"context"
	"time"

	"github.com/heirs-lab/prince/pkg/utils/logging"
)

// Notifier runs a single birthday greeting sweep and reports how many
// customers were greeted.
type Notifier interface {
	SendBirthdayGreetings(ctx context.Context) (int, error)
}

// BirthdayWorker manages the background birthday greeting sweep
//
// Architecture assumptions:
// - Single server instance (no distributed locking)
// - For future horizontal scaling, implement distributed locking or leader election
type BirthdayWorker struct {
	notifier Notifier
	interval time.Duration
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewBirthdayWorker creates a new worker that sweeps for customer birthdays
func NewBirthdayWorker(notifier Notifier, interval time.Duration) *BirthdayWorker {
	return &BirthdayWorker{
		notifier: notifier,
		interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background sweep loop
// - Initial sweep and periodic sweeps both run in a background goroutine
// - Does not block server startup
func (w *BirthdayWorker) Start(ctx context.Context) error {
	logging.Default().Info("Birthday worker starting",
		"interval", w.interval.String())

	go w.run(ctx)

	return nil
}

// Stop signals the worker to stop and waits for completion
func (w *BirthdayWorker) Stop() {
	logging.Default().Info("Birthday worker stopping")
	close(w.stopCh)
	<-w.doneCh
	logging.Default().Info("Birthday worker stopped")
}

// run is the main worker loop (runs in goroutine)
func (w *BirthdayWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	if err := w.sweep(ctx); err != nil {
		logging.Default().Error("Initial birthday sweep failed (will retry next interval)",
			"error", err.Error())
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.sweep(ctx); err != nil {
				// Log error but continue worker
				logging.Default().Error("Birthday sweep failed (will retry next interval)",
					"error", err.Error())
			}

		case <-w.stopCh:
			logging.Default().Info("Birthday worker received stop signal")
			return

		case <-ctx.Done():
			logging.Default().Info("Birthday worker context cancelled")
			return
		}
	}
}

// sweep performs a single sweep cycle
func (w *BirthdayWorker) sweep(ctx context.Context) error {
	startTime := time.Now()
	logging.Default().Info("Starting birthday sweep")

	count, err := w.notifier.SendBirthdayGreetings(ctx)
	if err != nil {
		return err
	}

	logging.Default().Info("Birthday sweep completed",
		"greeted", count,
		"duration", time.Since(startTime).String())

	return nil
}
