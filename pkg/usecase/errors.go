package usecase

import "errors"

var (
	ErrLLMNotConfigured       = errors.New("LLM client is not configured")
	ErrSearchNotConfigured    = errors.New("web search client is not configured")
	ErrRetrieverNotConfigured = errors.New("knowledge retriever is not configured")
	ErrEmptyGeneration        = errors.New("generation returned no completion")
)
