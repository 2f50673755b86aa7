package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/domain/types"
)

type agentRepository struct {
	mu      sync.Mutex
	records map[model.AgentID]*model.Agent
	nextID  model.AgentID
}

func newAgentRepository() *agentRepository {
	return &agentRepository{
		records: make(map[model.AgentID]*model.Agent),
		nextID:  1,
	}
}

func copyAgent(a *model.Agent) *model.Agent {
	copied := *a
	return &copied
}

func (r *agentRepository) Create(ctx context.Context, agent *model.Agent) (*model.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if agent.Status != "" && !agent.Status.IsValid() {
		return nil, goerr.New("invalid agent status", goerr.V("status", agent.Status))
	}

	created := copyAgent(agent)
	created.ID = r.nextID
	r.nextID++
	if created.Status == "" {
		created.Status = types.AgentStatusAvailable
	}

	r.records[created.ID] = created
	return copyAgent(created), nil
}

func (r *agentRepository) Get(ctx context.Context, id model.AgentID) (*model.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	agent, exists := r.records[id]
	if !exists {
		return nil, goerr.Wrap(ErrNotFound, "agent not found", goerr.V("id", id))
	}

	return copyAgent(agent), nil
}

// ClaimAvailable selects and marks the agent under a single lock, so two
// concurrent claims can never return the same agent.
func (r *agentRepository) ClaimAvailable(ctx context.Context) (*model.Agent, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var oldest *model.Agent
	for _, a := range r.records {
		if a.Status != types.AgentStatusAvailable {
			continue
		}
		if oldest == nil ||
			a.LastActive.Before(oldest.LastActive) ||
			(a.LastActive.Equal(oldest.LastActive) && a.ID < oldest.ID) {
			oldest = a
		}
	}

	if oldest == nil {
		return nil, nil
	}

	oldest.Status = types.AgentStatusBusy
	oldest.LastActive = time.Now().UTC()

	return copyAgent(oldest), nil
}
