package model

import (
	"time"

	"github.com/google/uuid"
)

// EmbeddingDimension is the fixed dimensionality of knowledge-base
// embedding vectors. The vector index (Firestore FindNearest) must be
// migrated with the same dimension.
const EmbeddingDimension = 768

// KnowledgeID is a UUID-based identifier for Knowledge
type KnowledgeID string

// NewKnowledgeID generates a new UUID v4 KnowledgeID
func NewKnowledgeID() KnowledgeID {
	return KnowledgeID(uuid.New().String())
}

// Knowledge is a knowledge-base document with its embedding vector,
// searchable by cosine similarity.
type Knowledge struct {
	ID        KnowledgeID
	Content   string
	Embedding []float32
	CreatedAt time.Time
}

// ScoredKnowledge pairs a knowledge document with its cosine similarity
// to a query embedding.
type ScoredKnowledge struct {
	Knowledge *Knowledge
	Score     float64
}
