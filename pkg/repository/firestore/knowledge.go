package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

const knowledgesCollection = "knowledges"

// knowledgeDoc is the Firestore document representation of
// model.Knowledge. Embedding is stored as firestore.Vector32 for
// FindNearest vector search; Distance is populated by the query result,
// never written.
type knowledgeDoc struct {
	ID        string             `firestore:"id"`
	Content   string             `firestore:"content"`
	Embedding firestore.Vector32 `firestore:"embedding,omitempty"`
	CreatedAt time.Time          `firestore:"created_at"`
	Distance  float64            `firestore:"vector_distance,omitempty"`
}

type knowledgeRepository struct {
	client *firestore.Client
}

func newKnowledgeRepository(client *firestore.Client) *knowledgeRepository {
	return &knowledgeRepository{client: client}
}

func (r *knowledgeRepository) Create(ctx context.Context, knowledge *model.Knowledge) (*model.Knowledge, error) {
	created := *knowledge
	if created.ID == "" {
		created.ID = model.NewKnowledgeID()
	}
	created.CreatedAt = time.Now().UTC()

	doc := &knowledgeDoc{
		ID:        string(created.ID),
		Content:   created.Content,
		CreatedAt: created.CreatedAt,
	}
	if len(created.Embedding) > 0 {
		doc.Embedding = firestore.Vector32(created.Embedding)
	}

	docRef := r.client.Collection(knowledgesCollection).Doc(string(created.ID))
	if _, err := docRef.Set(ctx, doc); err != nil {
		return nil, goerr.Wrap(err, "failed to create knowledge document")
	}

	return &created, nil
}

func (r *knowledgeRepository) FindByEmbedding(ctx context.Context, embedding []float32, limit int) ([]*model.ScoredKnowledge, error) {
	vq := r.client.Collection(knowledgesCollection).
		FindNearest("embedding", firestore.Vector32(embedding), limit,
			firestore.DistanceMeasureCosine,
			&firestore.FindNearestOptions{DistanceResultField: "vector_distance"},
		)

	iter := vq.Documents(ctx)
	defer iter.Stop()

	results := make([]*model.ScoredKnowledge, 0, limit)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate knowledge vector search results")
		}

		var d knowledgeDoc
		if err := doc.DataTo(&d); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal knowledge from vector search")
		}

		results = append(results, &model.ScoredKnowledge{
			Knowledge: &model.Knowledge{
				ID:        model.KnowledgeID(d.ID),
				Content:   d.Content,
				Embedding: []float32(d.Embedding),
				CreatedAt: d.CreatedAt,
			},
			// Cosine distance is 1 - similarity.
			Score: 1 - d.Distance,
		})
	}

	return results, nil
}
