package tasklist

import "sync"

// Manager hands out the per-owner List, creating it on first use. Lists
// live for the lifetime of the process; the cache they hold is rebuilt by
// the next Refresh after a restart.
type Manager struct {
	gw Gateway

	mu    sync.Mutex
	lists map[string]*List
}

// NewManager creates a manager over the given gateway.
func NewManager(gw Gateway) *Manager {
	return &Manager{gw: gw, lists: make(map[string]*List)}
}

// Get returns the owner's list, creating it if needed.
func (m *Manager) Get(owner string) *List {
	m.mu.Lock()
	defer m.mu.Unlock()
	l, ok := m.lists[owner]
	if !ok {
		l = NewList(m.gw, owner)
		m.lists[owner] = l
	}
	return l
}
