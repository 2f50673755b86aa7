package retriever_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/m-mizutani/gt"

	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/repository/memory"
	"github.com/heirs-lab/prince/pkg/service/retriever"
)

// mockLLMClient is a mock gollem LLMClient for testing
type mockLLMClient struct {
	generateEmbeddingFn func(ctx context.Context, dimension int, input []string) ([][]float64, error)
}

func (c *mockLLMClient) NewSession(ctx context.Context, options ...gollem.SessionOption) (gollem.Session, error) {
	return nil, goerr.New("not implemented")
}

func (c *mockLLMClient) GenerateEmbedding(ctx context.Context, dimension int, input []string) ([][]float64, error) {
	if c.generateEmbeddingFn != nil {
		return c.generateEmbeddingFn(ctx, dimension, input)
	}
	return [][]float64{{1, 0}}, nil
}

func TestRetrieve(t *testing.T) {
	ctx := context.Background()

	t.Run("returns only documents meeting the threshold", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "Motor insurance covers accidental damage.",
			Embedding: []float32{1, 0},
		})
		gt.NoError(t, err).Required()

		_, err = repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "Travel insurance covers trip cancellation.",
			Embedding: []float32{0, 1},
		})
		gt.NoError(t, err).Required()

		llm := &mockLLMClient{
			generateEmbeddingFn: func(ctx context.Context, dimension int, input []string) ([][]float64, error) {
				gt.Array(t, input).Length(1)
				return [][]float64{{1, 0}}, nil
			},
		}

		svc, err := retriever.New(llm, repo.Knowledge())
		gt.NoError(t, err).Required()

		docs, err := svc.Retrieve(ctx, "what does motor insurance cover")
		gt.NoError(t, err).Required()

		gt.Array(t, docs).Length(1)
		gt.Value(t, docs[0].Content).Equal("Motor insurance covers accidental damage.")
		gt.Number(t, docs[0].Score).GreaterOrEqual(0.7)
	})

	t.Run("threshold boundary is inclusive", func(t *testing.T) {
		repo := memory.New()

		// cosine([1,0],[3,4]) is exactly 0.6
		_, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "boundary document",
			Embedding: []float32{3, 4},
		})
		gt.NoError(t, err).Required()

		llm := &mockLLMClient{}

		svc, err := retriever.New(llm, repo.Knowledge(), retriever.WithThreshold(0.6))
		gt.NoError(t, err).Required()

		docs, err := svc.Retrieve(ctx, "boundary")
		gt.NoError(t, err).Required()

		gt.Array(t, docs).Length(1)
		gt.Value(t, docs[0].Content).Equal("boundary document")
	})

	t.Run("returns empty when nothing is relevant", func(t *testing.T) {
		repo := memory.New()

		_, err := repo.Knowledge().Create(ctx, &model.Knowledge{
			Content:   "unrelated document",
			Embedding: []float32{0, 1},
		})
		gt.NoError(t, err).Required()

		llm := &mockLLMClient{}

		svc, err := retriever.New(llm, repo.Knowledge())
		gt.NoError(t, err).Required()

		docs, err := svc.Retrieve(ctx, "something else entirely")
		gt.NoError(t, err).Required()
		gt.Array(t, docs).Length(0)
	})

	t.Run("propagates embedding failure", func(t *testing.T) {
		repo := memory.New()
		llm := &mockLLMClient{
			generateEmbeddingFn: func(ctx context.Context, dimension int, input []string) ([][]float64, error) {
				return nil, goerr.New("embedding backend down")
			},
		}

		svc, err := retriever.New(llm, repo.Knowledge())
		gt.NoError(t, err).Required()

		_, err = svc.Retrieve(ctx, "anything")
		gt.Value(t, err).NotNil()
	})

	t.Run("rejects empty query", func(t *testing.T) {
		repo := memory.New()
		svc, err := retriever.New(&mockLLMClient{}, repo.Knowledge())
		gt.NoError(t, err).Required()

		_, err = svc.Retrieve(ctx, "")
		gt.Value(t, err).NotNil()
	})
}

func TestNewValidation(t *testing.T) {
	repo := memory.New()

	_, err := retriever.New(nil, repo.Knowledge())
	gt.Value(t, err).NotNil()

	_, err = retriever.New(&mockLLMClient{}, nil)
	gt.Value(t, err).NotNil()
}
