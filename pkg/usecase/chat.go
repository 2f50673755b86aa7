package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/domain/types"
	"github.com/heirs-lab/prince/pkg/repository/firestore"
	"github.com/heirs-lab/prince/pkg/repository/memory"
	"github.com/heirs-lab/prince/pkg/service/retriever"
	"github.com/heirs-lab/prince/pkg/service/websearch"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

const (
	consentMenu     = "Thank you for agreeing to our privacy policy. How can I assist you today? Options: Buy a Product, View Your Policies, Make a Claim, Make a Complaint."
	consentDisagree = "You need to agree to our privacy policy to proceed. Type 'Agree' to continue or 'Exit' to quit."
	consentPrompt   = "Hello! Please confirm you agree to our privacy policy to proceed. Type 'Agree' or 'Disagree'."
	consentDenied   = "You need to agree to our privacy policy to proceed. Type 'Agree' to continue."
	identityFailure = "Sorry, we couldn't find your details. Please contact support for assistance."
)

// ChatUseCase orchestrates one conversation turn: agent escalation,
// consent gate, identity resolution, intent routing, and the grounded
// generative fallback, in that strict precedence order.
type ChatUseCase struct {
	repo      interfaces.Repository
	llm       gollem.LLMClient
	search    websearch.Service
	retriever retriever.Service
}

// NewChatUseCase creates a new ChatUseCase
func NewChatUseCase(repo interfaces.Repository, llm gollem.LLMClient, search websearch.Service, retr retriever.Service) *ChatUseCase {
	return &ChatUseCase{
		repo:      repo,
		llm:       llm,
		search:    search,
		retriever: retr,
	}
}

// HandleMessage processes one inbound message against the session state
// and returns the assistant's reply. The caller owns the session and must
// not process concurrent turns for it.
func (uc *ChatUseCase) HandleMessage(ctx context.Context, session *model.Session, input string) (string, error) {
	// Agent requests bypass all other state, even the consent gate.
	if strings.Contains(strings.ToLower(input), "agent") {
		return uc.escalate(ctx)
	}

	if !session.ConsentAnswered() {
		switch strings.ToLower(strings.TrimSpace(input)) {
		case "agree":
			session.GrantConsent()
			return consentMenu, nil
		case "disagree":
			return consentDisagree, nil
		default:
			return consentPrompt, nil
		}
	}

	// Guard against an inconsistent context; the consent gate above
	// normally keeps unanswered sessions from reaching this point.
	if !session.ConsentGiven() {
		return consentDenied, nil
	}

	if !session.Identified() {
		customer, err := uc.repo.Customer().GetByPhone(ctx, session.Phone)
		if err != nil {
			if errors.Is(err, memory.ErrNotFound) || errors.Is(err, firestore.ErrNotFound) {
				return identityFailure, nil
			}
			return "", goerr.Wrap(err, "failed to resolve customer identity")
		}
		session.SetCustomer(customer)
	}

	if intent, ok := types.ParseIntent(input); ok {
		response := respondToIntent(intent)
		session.AddTurn(types.RoleUser, input)
		session.AddTurn(types.RoleAssistant, response)
		return response, nil
	}

	response, err := uc.generateReply(ctx, session, input)
	if err != nil {
		return "", err
	}

	session.AddTurn(types.RoleUser, input)
	session.AddTurn(types.RoleAssistant, response)
	uc.persistSnapshot(ctx, session)

	return response, nil
}

// persistSnapshot appends the serialized session context as an immutable
// snapshot row. A failed write must not lose the already-computed
// response, so failures are logged and swallowed.
func (uc *ChatUseCase) persistSnapshot(ctx context.Context, session *model.Session) {
	customer := session.Context.Customer
	if customer == nil {
		return
	}

	contextJSON, err := session.MarshalContext()
	if err != nil {
		logging.From(ctx).Error("Failed to serialize session context",
			"customerID", customer.ID,
			"error", err.Error(),
		)
		return
	}

	if _, err := uc.repo.Snapshot().Append(ctx, &model.ContextSnapshot{
		CustomerID: customer.ID,
		Context:    contextJSON,
	}); err != nil {
		logging.From(ctx).Error("Failed to persist context snapshot",
			"customerID", customer.ID,
			"error", err.Error(),
		)
	}
}
