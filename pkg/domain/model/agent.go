package model

import (
	"time"

	"github.com/heirs-lab/prince/pkg/domain/types"
)

// AgentID is the durable numeric identifier of a support agent
type AgentID int64

// Agent is a human support agent available for escalation. Status and
// LastActive are mutated by the escalation flow; restoring an agent to
// available is owned by an external process.
type Agent struct {
	ID         AgentID
	Name       string
	Email      string
	Expertise  string
	Status     types.AgentStatus
	LastActive time.Time
}
