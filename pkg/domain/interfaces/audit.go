package interfaces

import (
	"context"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

// AuditRepository defines the interface for the append-only audit log.
// The core only writes events; the log is never read back.
type AuditRepository interface {
	// Append inserts a new audit event, assigning its ID and timestamp
	Append(ctx context.Context, event *model.AuditEvent) error
}
