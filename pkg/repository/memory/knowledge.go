package memory

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

type knowledgeRepository struct {
	mu      sync.RWMutex
	entries map[model.KnowledgeID]*model.Knowledge
}

func newKnowledgeRepository() *knowledgeRepository {
	return &knowledgeRepository{
		entries: make(map[model.KnowledgeID]*model.Knowledge),
	}
}

func copyKnowledge(k *model.Knowledge) *model.Knowledge {
	copied := &model.Knowledge{
		ID:        k.ID,
		Content:   k.Content,
		CreatedAt: k.CreatedAt,
	}
	if k.Embedding != nil {
		copied.Embedding = make([]float32, len(k.Embedding))
		copy(copied.Embedding, k.Embedding)
	}
	return copied
}

func (r *knowledgeRepository) Create(ctx context.Context, knowledge *model.Knowledge) (*model.Knowledge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyKnowledge(knowledge)
	if created.ID == "" {
		created.ID = model.NewKnowledgeID()
	}
	created.CreatedAt = time.Now().UTC()

	r.entries[created.ID] = created
	return copyKnowledge(created), nil
}

func (r *knowledgeRepository) FindByEmbedding(ctx context.Context, embedding []float32, limit int) ([]*model.ScoredKnowledge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	candidates := make([]*model.ScoredKnowledge, 0, len(r.entries))
	for _, k := range r.entries {
		if len(k.Embedding) == 0 {
			continue
		}
		candidates = append(candidates, &model.ScoredKnowledge{
			Knowledge: copyKnowledge(k),
			Score:     cosineSimilarity(embedding, k.Embedding),
		})
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})

	if limit > len(candidates) {
		limit = len(candidates)
	}

	return candidates[:limit], nil
}

func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	return dot / denom
}
