package interfaces

// Repository defines the interface for data persistence
type Repository interface {
	Customer() CustomerRepository
	Agent() AgentRepository
	Snapshot() SnapshotRepository
	Audit() AuditRepository
	Knowledge() KnowledgeRepository

	Close() error
}
