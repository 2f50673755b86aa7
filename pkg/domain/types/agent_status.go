package types

import "fmt"

// AgentStatus represents the availability of a human support agent
type AgentStatus string

const (
	AgentStatusAvailable AgentStatus = "available"
	AgentStatusBusy      AgentStatus = "busy"
)

// AllAgentStatuses returns all valid agent statuses
func AllAgentStatuses() []AgentStatus {
	return []AgentStatus{
		AgentStatusAvailable,
		AgentStatusBusy,
	}
}

// IsValid checks if the agent status is valid
func (s AgentStatus) IsValid() bool {
	switch s {
	case AgentStatusAvailable,
		AgentStatusBusy:
		return true
	default:
		return false
	}
}

// String returns the string representation of the agent status
func (s AgentStatus) String() string {
	return string(s)
}

// ParseAgentStatus parses a string into an AgentStatus
func ParseAgentStatus(s string) (AgentStatus, error) {
	status := AgentStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid agent status: %s", s)
	}
	return status, nil
}
