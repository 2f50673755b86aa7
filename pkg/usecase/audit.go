package usecase

import (
	"context"

	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/domain/types"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

// recordAudit appends an event to the audit log. The log is write-only
// for the conversation core, and a failed write must never fail the turn,
// so errors are logged and swallowed here.
func recordAudit(ctx context.Context, repo interfaces.Repository, kind types.AuditKind, detail string) {
	if err := repo.Audit().Append(ctx, &model.AuditEvent{
		Kind:   kind,
		Detail: detail,
	}); err != nil {
		logging.From(ctx).Error("Failed to append audit event",
			"kind", kind.String(),
			"detail", detail,
			"error", err.Error(),
		)
	}
}
