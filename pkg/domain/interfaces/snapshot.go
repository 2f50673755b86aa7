package interfaces

import (
	"context"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

// SnapshotRepository defines the interface for ContextSnapshot
// persistence. Snapshots are insert-only; no update operation exists.
type SnapshotRepository interface {
	// Append inserts a new snapshot row, assigning its ID and timestamp
	Append(ctx context.Context, snapshot *model.ContextSnapshot) (*model.ContextSnapshot, error)

	// ListByCustomerID retrieves up to limit snapshots for a customer,
	// newest first.
	ListByCustomerID(ctx context.Context, customerID model.CustomerID, limit int) ([]*model.ContextSnapshot, error)
}
