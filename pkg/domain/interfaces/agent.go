package interfaces

import (
	"context"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

// AgentRepository defines the interface for support agent data access
type AgentRepository interface {
	// Create creates a new agent record, assigning its ID
	Create(ctx context.Context, agent *model.Agent) (*model.Agent, error)

	// Get retrieves an agent by ID.
	// Returns an ErrNotFound-wrapped error when the agent does not exist.
	Get(ctx context.Context, id model.AgentID) (*model.Agent, error)

	// ClaimAvailable atomically selects the available agent with the
	// oldest LastActive timestamp (ties broken by insertion order), marks
	// it busy, and refreshes LastActive. The select-and-update sequence is
	// a single atomic operation: two concurrent claims never return the
	// same agent. Returns (nil, nil) when no agent is available — that is
	// a defined outcome, not an error.
	ClaimAvailable(ctx context.Context) (*model.Agent, error)
}
