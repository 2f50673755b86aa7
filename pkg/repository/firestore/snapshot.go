package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

const snapshotsCollection = "snapshots"

type snapshotDoc struct {
	ID         string    `firestore:"id"`
	CustomerID int64     `firestore:"customer_id"`
	Context    string    `firestore:"context"`
	CreatedAt  time.Time `firestore:"created_at"`
}

type snapshotRepository struct {
	client *firestore.Client
}

func newSnapshotRepository(client *firestore.Client) *snapshotRepository {
	return &snapshotRepository{client: client}
}

func (r *snapshotRepository) Append(ctx context.Context, snapshot *model.ContextSnapshot) (*model.ContextSnapshot, error) {
	created := *snapshot
	if created.ID == "" {
		created.ID = model.NewSnapshotID()
	}
	created.CreatedAt = time.Now().UTC()

	docRef := r.client.Collection(snapshotsCollection).Doc(string(created.ID))
	if _, err := docRef.Create(ctx, &snapshotDoc{
		ID:         string(created.ID),
		CustomerID: int64(created.CustomerID),
		Context:    created.Context,
		CreatedAt:  created.CreatedAt,
	}); err != nil {
		return nil, goerr.Wrap(err, "failed to append context snapshot",
			goerr.V("customerID", created.CustomerID),
		)
	}

	return &created, nil
}

func (r *snapshotRepository) ListByCustomerID(ctx context.Context, customerID model.CustomerID, limit int) ([]*model.ContextSnapshot, error) {
	iter := r.client.Collection(snapshotsCollection).
		Where("customer_id", "==", int64(customerID)).
		OrderBy("created_at", firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	snapshots := make([]*model.ContextSnapshot, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate snapshots",
				goerr.V("customerID", customerID),
			)
		}

		var d snapshotDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal snapshot")
		}

		snapshots = append(snapshots, &model.ContextSnapshot{
			ID:         model.SnapshotID(d.ID),
			CustomerID: model.CustomerID(d.CustomerID),
			Context:    d.Context,
			CreatedAt:  d.CreatedAt,
		})
	}

	return snapshots, nil
}
