package repository_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/domain/model"
)

func runKnowledgeRepositoryTest(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Helper()

	t.Run("Create assigns UUID and timestamp", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		created, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "Motor insurance covers accidental damage and third-party liability.",
			Embedding: []float32{0.1, 0.2, 0.3},
		})
		gt.NoError(t, err).Required()

		gt.String(t, string(created.ID)).NotEqual("")
		gt.Bool(t, created.CreatedAt.IsZero()).False()
		gt.Array(t, created.Embedding).Length(3)
	})

	t.Run("FindByEmbedding orders by descending similarity", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		exact, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "exact match document",
			Embedding: []float32{1, 0, 0},
		})
		gt.NoError(t, err).Required()

		near, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "near match document",
			Embedding: []float32{1, 1, 0},
		})
		gt.NoError(t, err).Required()

		far, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "far document",
			Embedding: []float32{0, 0, 1},
		})
		gt.NoError(t, err).Required()

		results, err := repo.Knowledge().FindByEmbedding(ctx, []float32{1, 0, 0}, 3)
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(3)

		gt.Value(t, results[0].Knowledge.ID).Equal(exact.ID)
		gt.Value(t, results[1].Knowledge.ID).Equal(near.ID)
		gt.Value(t, results[2].Knowledge.ID).Equal(far.ID)

		gt.Bool(t, results[0].Score > results[1].Score).True()
		gt.Bool(t, results[1].Score > results[2].Score).True()
	})

	t.Run("FindByEmbedding respects limit", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			_, err := repo.Knowledge().Create(ctx, &model.Knowledge{
				Content:   "document",
				Embedding: []float32{1, float32(i), 0},
			})
			gt.NoError(t, err).Required()
		}

		results, err := repo.Knowledge().FindByEmbedding(ctx, []float32{1, 0, 0}, 2)
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(2)
	})

	t.Run("FindByEmbedding returns empty when index is empty", func(t *testing.T) {
		repo := newRepo(t)
		ctx := context.Background()

		results, err := repo.Knowledge().FindByEmbedding(ctx, []float32{1, 0, 0}, 5)
		gt.NoError(t, err).Required()
		gt.Array(t, results).Length(0)
	})
}

func TestKnowledgeRepository_Memory(t *testing.T) {
	runKnowledgeRepositoryTest(t, newMemoryRepo)
}

// Firestore vector search requires the knowledges vector index; run
// `prince migrate` against the test project before enabling this.
func TestKnowledgeRepository_Firestore(t *testing.T) {
	runKnowledgeRepositoryTest(t, newFirestoreRepo)
}
