package model

import (
	"encoding/json"

	"github.com/m-mizutani/goerr/v2"

	"github.com/heirs-lab/prince/pkg/domain/types"
)

// Turn is a single message in the session transcript
type Turn struct {
	Role    types.Role `json:"role"`
	Content string     `json:"content"`
}

// SessionContext is the per-session context map. Privacy stays nil until
// the consent gate has recorded an explicit answer; Customer stays nil
// until identity resolution succeeds.
type SessionContext struct {
	Privacy  *bool     `json:"privacy,omitempty"`
	Customer *Customer `json:"customer,omitempty"`
}

// Session is the ephemeral state of one active conversation. It is owned
// exclusively by the single turn-processing flow of its identity and is
// never shared across sessions. Only its derived context is persisted,
// as ContextSnapshot rows.
type Session struct {
	Phone   string
	Turns   []Turn
	Context SessionContext
}

// NewSession creates a fresh session for the given phone identity
func NewSession(phone string) *Session {
	return &Session{Phone: phone}
}

// AddTurn appends a message to the transcript
func (s *Session) AddTurn(role types.Role, content string) {
	s.Turns = append(s.Turns, Turn{Role: role, Content: content})
}

// ConsentAnswered reports whether the consent gate has received an
// explicit agree/disagree answer.
func (s *Session) ConsentAnswered() bool {
	return s.Context.Privacy != nil
}

// ConsentGiven reports whether the customer has agreed to the privacy
// policy.
func (s *Session) ConsentGiven() bool {
	return s.Context.Privacy != nil && *s.Context.Privacy
}

// GrantConsent records agreement to the privacy policy
func (s *Session) GrantConsent() {
	agreed := true
	s.Context.Privacy = &agreed
}

// Identified reports whether identity resolution has completed for this
// session.
func (s *Session) Identified() bool {
	return s.Context.Customer != nil
}

// SetCustomer caches the resolved customer record in the session context.
// The record is immutable for the remainder of the session.
func (s *Session) SetCustomer(c *Customer) {
	s.Context.Customer = c
}

// Reset clears the transcript and context, returning the session to the
// consent gate.
func (s *Session) Reset() {
	s.Turns = nil
	s.Context = SessionContext{}
}

// MarshalContext serializes the context map for snapshot persistence
func (s *Session) MarshalContext() (string, error) {
	data, err := json.Marshal(s.Context)
	if err != nil {
		return "", goerr.Wrap(err, "failed to marshal session context")
	}
	return string(data), nil
}
