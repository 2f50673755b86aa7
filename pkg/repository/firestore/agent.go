package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/domain/types"
)

const agentsCollection = "agents"

type agentDoc struct {
	ID         int64     `firestore:"id"`
	Name       string    `firestore:"name"`
	Email      string    `firestore:"email"`
	Expertise  string    `firestore:"expertise"`
	Status     string    `firestore:"status"`
	LastActive time.Time `firestore:"last_active"`
}

func toAgentDoc(a *model.Agent) *agentDoc {
	return &agentDoc{
		ID:         int64(a.ID),
		Name:       a.Name,
		Email:      a.Email,
		Expertise:  a.Expertise,
		Status:     a.Status.String(),
		LastActive: a.LastActive,
	}
}

func fromAgentDoc(d *agentDoc) *model.Agent {
	return &model.Agent{
		ID:         model.AgentID(d.ID),
		Name:       d.Name,
		Email:      d.Email,
		Expertise:  d.Expertise,
		Status:     types.AgentStatus(d.Status),
		LastActive: d.LastActive,
	}
}

type agentRepository struct {
	client *firestore.Client
}

func newAgentRepository(client *firestore.Client) *agentRepository {
	return &agentRepository{client: client}
}

func (r *agentRepository) Create(ctx context.Context, agent *model.Agent) (*model.Agent, error) {
	if agent.Status != "" && !agent.Status.IsValid() {
		return nil, goerr.New("invalid agent status", goerr.V("status", agent.Status))
	}

	id, err := nextID(ctx, r.client, agentsCollection)
	if err != nil {
		return nil, err
	}

	created := *agent
	created.ID = model.AgentID(id)
	if created.Status == "" {
		created.Status = types.AgentStatusAvailable
	}

	docRef := r.client.Collection(agentsCollection).Doc(fmt.Sprintf("%d", id))
	if _, err := docRef.Set(ctx, toAgentDoc(&created)); err != nil {
		return nil, goerr.Wrap(err, "failed to create agent", goerr.V("id", id))
	}

	return &created, nil
}

func (r *agentRepository) Get(ctx context.Context, id model.AgentID) (*model.Agent, error) {
	docRef := r.client.Collection(agentsCollection).Doc(fmt.Sprintf("%d", id))
	doc, err := docRef.Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(ErrNotFound, "agent not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get agent", goerr.V("id", id))
	}

	var d agentDoc
	if err := doc.DataTo(&d); err != nil {
		return nil, goerr.Wrap(err, "failed to unmarshal agent", goerr.V("id", id))
	}

	return fromAgentDoc(&d), nil
}

// ClaimAvailable runs the select-and-update inside a single transaction.
// Firestore aborts and retries the transaction if the selected document
// changed concurrently, so two claims never return the same agent.
func (r *agentRepository) ClaimAvailable(ctx context.Context) (*model.Agent, error) {
	var claimed *model.Agent

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		claimed = nil

		query := r.client.Collection(agentsCollection).
			Where("status", "==", types.AgentStatusAvailable.String()).
			OrderBy("last_active", firestore.Asc).
			Limit(1)

		iter := tx.Documents(query)
		defer iter.Stop()

		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to query available agents")
		}

		var d agentDoc
		if err := doc.DataTo(&d); err != nil {
			return goerr.Wrap(err, "failed to unmarshal agent")
		}

		now := time.Now().UTC()
		if err := tx.Update(doc.Ref, []firestore.Update{
			{Path: "status", Value: types.AgentStatusBusy.String()},
			{Path: "last_active", Value: now},
		}); err != nil {
			return goerr.Wrap(err, "failed to claim agent", goerr.V("id", d.ID))
		}

		claimed = fromAgentDoc(&d)
		claimed.Status = types.AgentStatusBusy
		claimed.LastActive = now
		return nil
	})
	if err != nil {
		return nil, goerr.Wrap(err, "agent claim transaction failed")
	}

	return claimed, nil
}
