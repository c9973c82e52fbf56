// Package session scopes cart/order state to individual user sessions and
// guards the HTTP surface with the demo login accounts.
package session

import (
	"sync"

	"greenchain/internal/ledger"
)

// Registry hands each session its own ledger. Ledgers are created lazily
// and never shared across sessions.
type Registry struct {
	mu        sync.Mutex
	ledgers   map[string]*ledger.Ledger
	newLedger func() *ledger.Ledger
}

// NewRegistry creates a registry that builds ledgers with the given factory.
func NewRegistry(factory func() *ledger.Ledger) *Registry {
	return &Registry{
		ledgers:   make(map[string]*ledger.Ledger),
		newLedger: factory,
	}
}

// Ledger returns the ledger owned by the session, creating it on first use.
func (r *Registry) Ledger(sessionID string) *ledger.Ledger {
	r.mu.Lock()
	defer r.mu.Unlock()
	l, ok := r.ledgers[sessionID]
	if !ok {
		l = r.newLedger()
		r.ledgers[sessionID] = l
	}
	return l
}

// Drop discards a session's ledger, for logout.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.ledgers, sessionID)
}
