package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
)

type Firestore struct {
	client    *firestore.Client
	customer  *customerRepository
	agent     *agentRepository
	snapshot  *snapshotRepository
	audit     *auditRepository
	knowledge *knowledgeRepository
}

var _ interfaces.Repository = &Firestore{}

func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	var client *firestore.Client
	var err error

	if databaseID == "" {
		client, err = firestore.NewClient(ctx, projectID)
	} else {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Firestore{
		client:    client,
		customer:  newCustomerRepository(client),
		agent:     newAgentRepository(client),
		snapshot:  newSnapshotRepository(client),
		audit:     newAuditRepository(client),
		knowledge: newKnowledgeRepository(client),
	}, nil
}

func (f *Firestore) Customer() interfaces.CustomerRepository {
	return f.customer
}

func (f *Firestore) Agent() interfaces.AgentRepository {
	return f.agent
}

func (f *Firestore) Snapshot() interfaces.SnapshotRepository {
	return f.snapshot
}

func (f *Firestore) Audit() interfaces.AuditRepository {
	return f.audit
}

func (f *Firestore) Knowledge() interfaces.KnowledgeRepository {
	return f.knowledge
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}

const countersCollection = "counters"

// nextID allocates the next numeric ID for the named sequence via a
// transactional counter document.
func nextID(ctx context.Context, client *firestore.Client, name string) (int64, error) {
	var allocated int64

	err := client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		ref := client.Collection(countersCollection).Doc(name)

		doc, err := tx.Get(ref)
		if err != nil && !isNotFound(err) {
			return goerr.Wrap(err, "failed to read counter", goerr.V("name", name))
		}

		var current int64
		if doc != nil && doc.Exists() {
			value, err := doc.DataAt("value")
			if err != nil {
				return goerr.Wrap(err, "failed to read counter value", goerr.V("name", name))
			}
			if v, ok := value.(int64); ok {
				current = v
			}
		}

		allocated = current + 1
		return tx.Set(ref, map[string]any{"value": allocated})
	})
	if err != nil {
		return 0, goerr.Wrap(err, "failed to allocate ID", goerr.V("name", name))
	}

	return allocated, nil
}
