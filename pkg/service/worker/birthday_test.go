package worker_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/heirs-lab/prince/pkg/service/worker"
)

// mockNotifier is a mock implementation of worker.Notifier for testing
type mockNotifier struct {
	mu        sync.Mutex
	calls     int
	sweepErr  error
	lastCount int
}

func (m *mockNotifier) SendBirthdayGreetings(ctx context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.sweepErr != nil {
		return 0, m.sweepErr
	}
	return m.lastCount, nil
}

func (m *mockNotifier) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *mockNotifier) setError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sweepErr = err
}

func TestBirthdayWorker_ImmediateInitialSweep(t *testing.T) {
	ctx := context.Background()
	notifier := &mockNotifier{lastCount: 2}

	w := worker.NewBirthdayWorker(notifier, 10*time.Minute)

	if err := w.Start(ctx); err != nil {
		t.Fatalf("failed to start worker: %v", err)
	}
	defer w.Stop()

	// Wait for background initial sweep to complete
	time.Sleep(50 * time.Millisecond)

	if got := notifier.callCount(); got != 1 {
		t.Fatalf("expected 1 sweep after start, got %d", got)
	}
}

func TestBirthdayWorker_PeriodicSweep(t *testing.T) {
	ctx := context.Background()
	notifier := &mockNotifier{}

	w := worker.NewBirthdayWorker(notifier, 100*time.Millisecond)

	if err := w.Start(ctx); err != nil {
		t.Fatalf("failed to start worker: %v", err)
	}
	defer w.Stop()

	// Wait for initial sweep plus at least one periodic tick
	time.Sleep(250 * time.Millisecond)

	if got := notifier.callCount(); got < 2 {
		t.Errorf("expected at least 2 sweeps, got %d", got)
	}
}

func TestBirthdayWorker_ContinuesAfterError(t *testing.T) {
	ctx := context.Background()
	notifier := &mockNotifier{}
	notifier.setError(fmt.Errorf("sms gateway down"))

	w := worker.NewBirthdayWorker(notifier, 100*time.Millisecond)

	if err := w.Start(ctx); err != nil {
		t.Fatalf("failed to start worker: %v", err)
	}
	defer w.Stop()

	// Wait across multiple intervals; sweeps keep running despite errors
	time.Sleep(250 * time.Millisecond)

	if got := notifier.callCount(); got < 2 {
		t.Errorf("expected worker to keep sweeping after errors, got %d sweeps", got)
	}
}

func TestBirthdayWorker_StopsCleanly(t *testing.T) {
	ctx := context.Background()
	notifier := &mockNotifier{}

	w := worker.NewBirthdayWorker(notifier, 100*time.Millisecond)

	if err := w.Start(ctx); err != nil {
		t.Fatalf("failed to start worker: %v", err)
	}

	time.Sleep(50 * time.Millisecond)

	stopStart := time.Now()
	w.Stop()
	stopDuration := time.Since(stopStart)

	if stopDuration > time.Second {
		t.Errorf("Stop() took too long: %v", stopDuration)
	}
}
