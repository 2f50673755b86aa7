package memory

import (
	"context"
	"sync"
	"time"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

type auditRepository struct {
	mu      sync.RWMutex
	entries []*model.AuditEvent
}

func newAuditRepository() *auditRepository {
	return &auditRepository{}
}

func copyAuditEvent(e *model.AuditEvent) *model.AuditEvent {
	copied := *e
	return &copied
}

func (r *auditRepository) Append(ctx context.Context, event *model.AuditEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := copyAuditEvent(event)
	if created.ID == "" {
		created.ID = model.NewAuditEventID()
	}
	created.CreatedAt = time.Now().UTC()

	r.entries = append(r.entries, created)
	return nil
}

func (r *auditRepository) events() []*model.AuditEvent {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.AuditEvent, len(r.entries))
	for i, e := range r.entries {
		result[i] = copyAuditEvent(e)
	}
	return result
}
