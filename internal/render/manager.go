// Package render arbitrates access to heavyweight rendering contexts. The
// host platform enforces a hard ceiling on how many such contexts can exist
// at once; exceeding it breaks rendering elsewhere in the process.
package render

import "sync"

// DefaultMaxContexts stays under the platform ceiling with margin for
// consumers that have torn down but not yet released their slot.
const DefaultMaxContexts = 6

// ContextManager tracks which consumers currently hold a rendering context
// lease. One instance serves the whole process; every consumer must obtain
// a grant from Request before acquiring its context and must call Release
// on every teardown path.
type ContextManager struct {
	mu       sync.Mutex
	capacity int
	active   map[string]struct{}
}

func NewContextManager(capacity int) *ContextManager {
	if capacity <= 0 {
		capacity = DefaultMaxContexts
	}
	return &ContextManager{
		capacity: capacity,
		active:   make(map[string]struct{}),
	}
}

// Request grants a lease to the consumer if capacity allows. A consumer that
// already holds a lease is granted again without consuming a second slot. A
// false return means the caller must fall back to a lightweight substitute.
func (m *ContextManager) Request(consumerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.active[consumerID]; ok {
		return true
	}
	if len(m.active) >= m.capacity {
		return false
	}
	m.active[consumerID] = struct{}{}
	return true
}

// Release frees the consumer's lease. Releasing a consumer that holds no
// lease is a no-op, so teardown paths can call it unconditionally.
func (m *ContextManager) Release(consumerID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.active, consumerID)
}

// Holds reports whether the consumer currently holds a lease.
func (m *ContextManager) Holds(consumerID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.active[consumerID]
	return ok
}

// Active returns the number of leases currently held.
func (m *ContextManager) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.active)
}

// Capacity returns the fixed lease capacity.
func (m *ContextManager) Capacity() int {
	return m.capacity
}
