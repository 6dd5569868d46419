// ABOUTME: Mock Store implementation for testing
// ABOUTME: Records every lookup and injects errors or panics per key

package store

import (
	"sync"

	"github.com/2389/devsignals/internal/settings"
)

// Query is one recorded GetString call.
type Query struct {
	Namespace settings.Namespace
	Key       settings.Key
}

// MockStore is an in-memory Store that records lookups and can be told to
// fail. Writes go straight to the embedded MemoryStore.
type MockStore struct {
	*MemoryStore

	mu      sync.Mutex
	queries []Query
	errs    map[Query]error
	panics  map[Query]any
	failAll error
}

// NewMockStore creates a new MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		MemoryStore: NewMemoryStore(),
		errs:        make(map[Query]error),
		panics:      make(map[Query]any),
	}
}

// FailWith makes lookups of key return err.
func (m *MockStore) FailWith(ns settings.Namespace, key settings.Key, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[Query{ns, key}] = err
}

// PanicWith makes lookups of key panic with v.
func (m *MockStore) PanicWith(ns settings.Namespace, key settings.Key, v any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.panics[Query{ns, key}] = v
}

// FailAll makes every lookup return err. A nil err clears it.
func (m *MockStore) FailAll(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failAll = err
}

// GetString records the lookup, applies any injected failure, then reads
// from the embedded MemoryStore.
func (m *MockStore) GetString(ns settings.Namespace, key settings.Key) (string, error) {
	q := Query{ns, key}

	m.mu.Lock()
	m.queries = append(m.queries, q)
	p, shouldPanic := m.panics[q]
	err := m.errs[q]
	if m.failAll != nil {
		err = m.failAll
	}
	m.mu.Unlock()

	if shouldPanic {
		panic(p)
	}
	if err != nil {
		return "", err
	}
	return m.MemoryStore.GetString(ns, key)
}

// Queries returns a copy of the recorded lookups in call order.
func (m *MockStore) Queries() []Query {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Query, len(m.queries))
	copy(out, m.queries)
	return out
}

// ResetQueries clears the recorded lookups.
func (m *MockStore) ResetQueries() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = nil
}
