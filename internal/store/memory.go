// ABOUTME: In-memory Store implementation
// ABOUTME: Backs file-loaded settings dumps and the test mock

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/2389/devsignals/internal/settings"
)

// MemoryStore keeps settings in maps guarded by a RWMutex.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[settings.Namespace]map[settings.Key]string
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	values := make(map[settings.Namespace]map[settings.Key]string)
	for _, ns := range settings.Namespaces() {
		values[ns] = make(map[settings.Key]string)
	}
	return &MemoryStore{values: values}
}

// GetString returns the value for key, or ErrNotFound.
func (m *MemoryStore) GetString(ns settings.Namespace, key settings.Key) (string, error) {
	if err := checkNamespace(ns); err != nil {
		return "", err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[ns][key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

// Put sets key to value, replacing any previous value.
func (m *MemoryStore) Put(_ context.Context, ns settings.Namespace, key settings.Key, value string) error {
	if err := checkNamespace(ns); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[ns][key] = value
	return nil
}

// Delete removes key. Deleting a missing key returns ErrNotFound.
func (m *MemoryStore) Delete(_ context.Context, ns settings.Namespace, key settings.Key) error {
	if err := checkNamespace(ns); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.values[ns][key]; !ok {
		return ErrNotFound
	}
	delete(m.values[ns], key)
	return nil
}

// List returns the settings of ns sorted by key.
func (m *MemoryStore) List(_ context.Context, ns settings.Namespace) ([]Setting, error) {
	if err := checkNamespace(ns); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Setting, 0, len(m.values[ns]))
	for k, v := range m.values[ns] {
		out = append(out, Setting{Namespace: ns, Key: k, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}

// Close is a no-op.
func (m *MemoryStore) Close() error {
	return nil
}
