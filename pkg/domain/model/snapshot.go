package model

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotID is a UUID-based identifier for ContextSnapshot
type SnapshotID string

// NewSnapshotID generates a new UUID v4 SnapshotID
func NewSnapshotID() SnapshotID {
	return SnapshotID(uuid.New().String())
}

// ContextSnapshot is the serialized form of a session's context map,
// persisted as an immutable audit row. One snapshot is appended per
// completed generative turn; rows are never updated in place.
type ContextSnapshot struct {
	ID         SnapshotID
	CustomerID CustomerID
	Context    string // serialized SessionContext JSON
	CreatedAt  time.Time
}
