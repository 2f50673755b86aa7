package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"golang.org/x/sync/errgroup"

	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/domain/types"
)

const (
	// queryQualifier is appended verbatim to the user's message before
	// retrieval to bias both sources toward domain-relevant results.
	queryQualifier = " for Heirs Insurance Group"

	// noRelevantInformation replaces the grounding context when both
	// retrieval sources come back empty. Prompt construction must never
	// receive an empty grounding block silently.
	noRelevantInformation = "No relevant information found."
)

//go:embed prompt/system.md
var systemPromptTmpl string

var systemPrompt = template.Must(template.New("system").Parse(systemPromptTmpl))

// promptData holds all data for the system prompt template
type promptData struct {
	CustomerProfile  string
	GroundingContext string
	UserInput        string
}

// sourceResult is the explicit outcome of one retrieval source: data,
// empty, or failure. A failure is isolated to its source and downgraded
// to an empty contribution after being audited.
type sourceResult struct {
	block string
	err   error
}

// generateReply runs the grounded generative fallback: two-source
// retrieval, prompt assembly, and a single generation call. Generation
// failure is unrecoverable for the turn and propagates to the caller.
func (uc *ChatUseCase) generateReply(ctx context.Context, session *model.Session, input string) (string, error) {
	if uc.llm == nil {
		return "", goerr.Wrap(ErrLLMNotConfigured, "cannot generate reply")
	}
	if uc.search == nil {
		return "", goerr.Wrap(ErrSearchNotConfigured, "cannot generate reply")
	}
	if uc.retriever == nil {
		return "", goerr.Wrap(ErrRetrieverNotConfigured, "cannot generate reply")
	}

	grounding := uc.buildGroundingContext(ctx, input+queryQualifier)

	instruction, err := buildSystemPrompt(session, grounding, input)
	if err != nil {
		return "", err
	}

	llmSession, err := uc.llm.NewSession(ctx,
		gollem.WithSessionSystemPrompt(instruction),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := llmSession.GenerateContent(ctx, gollem.Text(input))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate reply")
	}
	if len(resp.Texts) == 0 || resp.Texts[0] == "" {
		return "", goerr.Wrap(ErrEmptyGeneration, "failed to generate reply")
	}

	return resp.Texts[0], nil
}

// buildSystemPrompt assembles the constrained system instruction: the
// persona, the serialized customer profile, the fused grounding context,
// the restated user input, and the fixed behavioral directives.
func buildSystemPrompt(session *model.Session, grounding, input string) (string, error) {
	profile, err := json.Marshal(session.Context.Customer)
	if err != nil {
		return "", goerr.Wrap(err, "failed to serialize customer profile")
	}

	var buf bytes.Buffer
	if err := systemPrompt.Execute(&buf, promptData{
		CustomerProfile:  string(profile),
		GroundingContext: grounding,
		UserInput:        input,
	}); err != nil {
		return "", goerr.Wrap(err, "failed to execute system prompt template")
	}

	return buf.String(), nil
}

// buildGroundingContext queries web search and the knowledge base
// concurrently and fuses their outputs: web snippets first, then
// knowledge-base documents, newline-separated, each source preserving
// its own order. A failed source is audited and contributes nothing.
func (uc *ChatUseCase) buildGroundingContext(ctx context.Context, query string) string {
	var web, kb sourceResult

	var eg errgroup.Group
	eg.Go(func() error {
		results, err := uc.search.Search(ctx, query)
		if err != nil {
			web.err = err
			return nil
		}
		snippets := make([]string, 0, len(results))
		for _, r := range results {
			snippets = append(snippets, r.Snippet)
		}
		web.block = strings.Join(snippets, "\n")
		return nil
	})
	eg.Go(func() error {
		docs, err := uc.retriever.Retrieve(ctx, query)
		if err != nil {
			kb.err = err
			return nil
		}
		contents := make([]string, 0, len(docs))
		for _, d := range docs {
			contents = append(contents, d.Content)
		}
		kb.block = strings.Join(contents, "\n")
		return nil
	})
	_ = eg.Wait()

	if web.err != nil {
		recordAudit(ctx, uc.repo, types.AuditKindError,
			fmt.Sprintf("Web search failed: %v", web.err))
	}
	if kb.err != nil {
		recordAudit(ctx, uc.repo, types.AuditKindError,
			fmt.Sprintf("Knowledge base retrieval failed: %v", kb.err))
	}

	var parts []string
	if web.block != "" {
		parts = append(parts, web.block)
	}
	if kb.block != "" {
		parts = append(parts, kb.block)
	}
	if len(parts) == 0 {
		return noRelevantInformation
	}

	return strings.Join(parts, "\n")
}
