package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/types"
)

const noAgentAvailable = "No agents available. Please try later or let me assist further."

// escalate hands the conversation over to the least recently active
// available agent. The claim is atomic in the repository, so two
// concurrent escalations never receive the same agent. When no agent is
// available nothing is mutated.
func (uc *ChatUseCase) escalate(ctx context.Context) (string, error) {
	agent, err := uc.repo.Agent().ClaimAvailable(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to claim an available agent")
	}

	if agent == nil {
		return noAgentAvailable, nil
	}

	recordAudit(ctx, uc.repo, types.AuditKindAgentEscalation,
		fmt.Sprintf("Customer connected to agent %s.", agent.Name))

	return fmt.Sprintf("Connecting you with %s, who specializes in %s. Contact: %s.",
		agent.Name, agent.Expertise, agent.Email), nil
}
