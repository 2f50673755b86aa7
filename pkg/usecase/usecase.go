package usecase

import (
	"github.com/m-mizutani/gollem"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/service/retriever"
	"github.com/heirs-lab/prince/pkg/service/sms"
	"github.com/heirs-lab/prince/pkg/service/websearch"
)

type UseCases struct {
	repo      interfaces.Repository
	llm       gollem.LLMClient
	search    websearch.Service
	retriever retriever.Service
	sms       sms.Service

	Chat     *ChatUseCase
	Birthday *BirthdayUseCase
}

type Option func(*UseCases)

func WithLLM(llm gollem.LLMClient) Option {
	return func(uc *UseCases) {
		uc.llm = llm
	}
}

func WithSearch(search websearch.Service) Option {
	return func(uc *UseCases) {
		uc.search = search
	}
}

func WithRetriever(retr retriever.Service) Option {
	return func(uc *UseCases) {
		uc.retriever = retr
	}
}

func WithSMS(svc sms.Service) Option {
	return func(uc *UseCases) {
		uc.sms = svc
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	if uc.sms == nil {
		uc.sms = sms.NewStub()
	}

	uc.Chat = NewChatUseCase(repo, uc.llm, uc.search, uc.retriever)
	uc.Birthday = NewBirthdayUseCase(repo, uc.sms)

	return uc
}
