package memory

import (
	"context"
	"sync"
	"time"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

type snapshotRepository struct {
	mu      sync.RWMutex
	entries map[model.CustomerID][]*model.ContextSnapshot
}

func newSnapshotRepository() *snapshotRepository {
	return &snapshotRepository{
		entries: make(map[model.CustomerID][]*model.ContextSnapshot),
	}
}

func copySnapshot(s *model.ContextSnapshot) *model.ContextSnapshot {
	copied := *s
	return &copied
}

func (r *snapshotRepository) Append(ctx context.Context, snapshot *model.ContextSnapshot) (*model.ContextSnapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copySnapshot(snapshot)
	if created.ID == "" {
		created.ID = model.NewSnapshotID()
	}
	created.CreatedAt = time.Now().UTC()

	r.entries[created.CustomerID] = append(r.entries[created.CustomerID], created)
	return copySnapshot(created), nil
}

func (r *snapshotRepository) ListByCustomerID(ctx context.Context, customerID model.CustomerID, limit int) ([]*model.ContextSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rows := r.entries[customerID]

	// Rows are appended in order; return newest first.
	result := make([]*model.ContextSnapshot, 0, limit)
	for i := len(rows) - 1; i >= 0 && len(result) < limit; i-- {
		result = append(result, copySnapshot(rows[i]))
	}

	return result, nil
}
