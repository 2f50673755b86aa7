package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/cli/config"
	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/service/retriever"
	"github.com/heirs-lab/prince/pkg/usecase"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

// buildUseCases wires the optional LLM and web search services into the
// use case layer. Missing credentials disable the generative fallback
// rather than failing startup; the conversation flows that need no model
// (consent, intent routing, escalation) keep working.
func buildUseCases(ctx context.Context, repo interfaces.Repository, llmCfg *config.LLM, searchCfg *config.Search) (*usecase.UseCases, error) {
	var ucOpts []usecase.Option

	llmClient, err := llmCfg.Configure(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure LLM client")
	}
	if llmClient != nil {
		retr, err := retriever.New(llmClient, repo.Knowledge())
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create knowledge retriever")
		}
		ucOpts = append(ucOpts,
			usecase.WithLLM(llmClient),
			usecase.WithRetriever(retr),
		)
		logging.Default().Info("LLM client enabled", "provider", llmCfg.Provider())
	} else {
		logging.Default().Info("LLM not configured, generative replies will be unavailable")
	}

	searchSvc, err := searchCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure web search client")
	}
	if searchSvc != nil {
		ucOpts = append(ucOpts, usecase.WithSearch(searchSvc))
		logging.Default().Info("Web search grounding enabled")
	} else {
		logging.Default().Info("Serper API key not configured, web search grounding will be limited")
	}

	return usecase.New(repo, ucOpts...), nil
}
