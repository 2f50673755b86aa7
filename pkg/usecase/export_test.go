package usecase

import (
	"context"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

func (uc *ChatUseCase) BuildGroundingContext(ctx context.Context, query string) string {
	return uc.buildGroundingContext(ctx, query)
}

func BuildSystemPrompt(session *model.Session, grounding, input string) (string, error) {
	return buildSystemPrompt(session, grounding, input)
}

const (
	TestQueryQualifier        = queryQualifier
	TestNoRelevantInformation = noRelevantInformation
)
