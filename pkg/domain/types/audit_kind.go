package types

import "fmt"

// AuditKind classifies entries in the append-only audit log
type AuditKind string

const (
	AuditKindError           AuditKind = "Error"
	AuditKindAgentEscalation AuditKind = "AgentEscalation"
)

// AllAuditKinds returns all valid audit kinds
func AllAuditKinds() []AuditKind {
	return []AuditKind{
		AuditKindError,
		AuditKindAgentEscalation,
	}
}

// IsValid checks if the audit kind is valid
func (k AuditKind) IsValid() bool {
	switch k {
	case AuditKindError,
		AuditKindAgentEscalation:
		return true
	default:
		return false
	}
}

// String returns the string representation of the audit kind
func (k AuditKind) String() string {
	return string(k)
}

// ParseAuditKind parses a string into an AuditKind
func ParseAuditKind(s string) (AuditKind, error) {
	kind := AuditKind(s)
	if !kind.IsValid() {
		return "", fmt.Errorf("invalid audit kind: %s", s)
	}
	return kind, nil
}
