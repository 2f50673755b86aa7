package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

const auditCollection = "audit_events"

type auditDoc struct {
	ID        string    `firestore:"id"`
	Kind      string    `firestore:"kind"`
	Detail    string    `firestore:"detail"`
	CreatedAt time.Time `firestore:"created_at"`
}

type auditRepository struct {
	client *firestore.Client
}

func newAuditRepository(client *firestore.Client) *auditRepository {
	return &auditRepository{client: client}
}

// Append uses Create rather than Set: audit rows are insert-only and an
// ID collision must fail instead of overwriting history.
func (r *auditRepository) Append(ctx context.Context, event *model.AuditEvent) error {
	created := *event
	if created.ID == "" {
		created.ID = model.NewAuditEventID()
	}
	created.CreatedAt = time.Now().UTC()

	docRef := r.client.Collection(auditCollection).Doc(string(created.ID))
	if _, err := docRef.Create(ctx, &auditDoc{
		ID:        string(created.ID),
		Kind:      created.Kind.String(),
		Detail:    created.Detail,
		CreatedAt: created.CreatedAt,
	}); err != nil {
		return goerr.Wrap(err, "failed to append audit event",
			goerr.V("kind", created.Kind),
		)
	}

	return nil
}
