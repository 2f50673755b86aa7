package memory

import (
	"github.com/heirs-lab/prince/pkg/domain/interfaces"
	"github.com/heirs-lab/prince/pkg/domain/model"
)

// Memory is the in-memory repository backend used for development and
// tests.
type Memory struct {
	customer  *customerRepository
	agent     *agentRepository
	snapshot  *snapshotRepository
	audit     *auditRepository
	knowledge *knowledgeRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	return &Memory{
		customer:  newCustomerRepository(),
		agent:     newAgentRepository(),
		snapshot:  newSnapshotRepository(),
		audit:     newAuditRepository(),
		knowledge: newKnowledgeRepository(),
	}
}

func (m *Memory) Customer() interfaces.CustomerRepository {
	return m.customer
}

func (m *Memory) Agent() interfaces.AgentRepository {
	return m.agent
}

func (m *Memory) Snapshot() interfaces.SnapshotRepository {
	return m.snapshot
}

func (m *Memory) Audit() interfaces.AuditRepository {
	return m.audit
}

func (m *Memory) Knowledge() interfaces.KnowledgeRepository {
	return m.knowledge
}

func (m *Memory) Close() error {
	return nil
}

// AuditEvents returns a copy of all recorded audit events. The backend
// is write-only through the repository interface; this accessor exists
// for development inspection and tests.
func (m *Memory) AuditEvents() []*model.AuditEvent {
	return m.audit.events()
}
