package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/heirs-lab/prince/pkg/domain/types"
)

// AuditEventID is a UUID-based identifier for AuditEvent
type AuditEventID string

// NewAuditEventID generates a new UUID v4 AuditEventID
func NewAuditEventID() AuditEventID {
	return AuditEventID(uuid.New().String())
}

// AuditEvent is an insert-only record of a notable occurrence, written
// for traceability and never read back by the core.
type AuditEvent struct {
	ID        AuditEventID
	Kind      types.AuditKind
	Detail    string
	CreatedAt time.Time
}
