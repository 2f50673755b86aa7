package http

import (
	"sync"

	"github.com/heirs-lab/prince/pkg/domain/model"
)

// sessionHub owns all in-memory sessions, keyed by phone identity. Turns
// for the same identity are serialized through the entry mutex, so the
// usecase layer never sees concurrent turns on one session. Sessions
// live for the process lifetime; only their derived context is persisted.
type sessionHub struct {
	mu      sync.Mutex
	entries map[string]*sessionEntry
}

type sessionEntry struct {
	mu      sync.Mutex
	session *model.Session
}

func newSessionHub() *sessionHub {
	return &sessionHub{
		entries: make(map[string]*sessionEntry),
	}
}

// acquire returns the session for the phone identity with its entry
// locked. The caller must call release when the turn is done.
func (h *sessionHub) acquire(phone string) *sessionEntry {
	h.mu.Lock()
	entry, ok := h.entries[phone]
	if !ok {
		entry = &sessionEntry{session: model.NewSession(phone)}
		h.entries[phone] = entry
	}
	h.mu.Unlock()

	entry.mu.Lock()
	return entry
}

func (e *sessionEntry) release() {
	e.mu.Unlock()
}

// reset clears the session state for the phone identity, returning it to
// the consent gate. A no-op for unknown identities.
func (h *sessionHub) reset(phone string) {
	h.mu.Lock()
	entry, ok := h.entries[phone]
	h.mu.Unlock()

	if !ok {
		return
	}

	entry.mu.Lock()
	entry.session.Reset()
	entry.mu.Unlock()
}
