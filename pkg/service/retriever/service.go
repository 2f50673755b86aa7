package retriever

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/domain/model"
)

const (
	defaultThreshold = 0.7
	defaultLimit     = 5
)

// Document is a knowledge base entry that passed the similarity threshold.
type Document struct {
	Content string
	Score   float64
}

// Service retrieves knowledge base documents relevant to a query.
type Service interface {
	Retrieve(ctx context.Context, query string) ([]*Document, error)
}

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
	repo      interfaces.KnowledgeRepository
	threshold float64
	limit     int
}

// Option is a functional option for client configuration
type Option func(*client)

// WithThreshold overrides the minimum similarity score. Documents scoring
// at or above the threshold are returned.
func WithThreshold(threshold float64) Option {
	return func(c *client) {
		c.threshold = threshold
	}
}

// WithLimit overrides the maximum number of candidates fetched from the store.
func WithLimit(limit int) Option {
	return func(c *client) {
		c.limit = limit
	}
}

// New creates a new retriever backed by the LLM embedding model and the
// knowledge repository
func New(llmClient gollem.LLMClient, repo interfaces.KnowledgeRepository, opts ...Option) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}
	if repo == nil {
		return nil, goerr.New("knowledge repository is required")
	}

	c := &client{
		llmClient: llmClient,
		repo:      repo,
		threshold: defaultThreshold,
		limit:     defaultLimit,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Retrieve embeds the query and returns documents whose similarity score
// meets the threshold, most similar first
func (c *client) Retrieve(ctx context.Context, query string) ([]*Document, error) {
	if query == "" {
		return nil, goerr.New("query is required")
	}

	embeddings, err := c.llmClient.GenerateEmbedding(ctx, model.EmbeddingDimension, []string{query})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate query embedding")
	}
	if len(embeddings) == 0 {
		return nil, goerr.New("no embedding returned for query")
	}

	vector := make([]float32, len(embeddings[0]))
	for i, v := range embeddings[0] {
		vector[i] = float32(v)
	}

	scored, err := c.repo.FindByEmbedding(ctx, vector, c.limit)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to search knowledge base")
	}

	var docs []*Document
	for _, s := range scored {
		if s.Score < c.threshold {
			continue
		}
		docs = append(docs, &Document{
			Content: s.Knowledge.Content,
			Score:   s.Score,
		})
	}

	return docs, nil
}
