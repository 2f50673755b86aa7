package interfaces

import (
	"context"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

// KnowledgeRepository defines the interface for knowledge-base documents
type KnowledgeRepository interface {
	// Create creates a new knowledge document
	Create(ctx context.Context, knowledge *model.Knowledge) (*model.Knowledge, error)

	// FindByEmbedding performs vector similarity search using cosine
	// similarity. Returns up to limit documents ordered by descending
	// score. An empty result is not an error.
	FindByEmbedding(ctx context.Context, embedding []float32, limit int) ([]*model.ScoredKnowledge, error)
}
