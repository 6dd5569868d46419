// ABOUTME: Store interface and shared types for settings providers
// ABOUTME: Every store backs settings.Provider and adds write and listing operations

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/2389/devsignals/internal/settings"
)

// ErrNotFound is returned when a key has no value in its namespace
var ErrNotFound = errors.New("not found")

// ErrUnsupportedNamespace is returned for a namespace the store does not know
var ErrUnsupportedNamespace = errors.New("unsupported namespace")

// Setting is a single stored value
type Setting struct {
	Namespace settings.Namespace
	Key       settings.Key
	Value     string
}

// Store is a settings provider that can also be written and listed
type Store interface {
	settings.Provider

	Put(ctx context.Context, ns settings.Namespace, key settings.Key, value string) error
	Delete(ctx context.Context, ns settings.Namespace, key settings.Key) error
	List(ctx context.Context, ns settings.Namespace) ([]Setting, error)

	// Close releases any resources held by the store
	Close() error
}

// checkNamespace rejects namespaces outside the fixed set.
func checkNamespace(ns settings.Namespace) error {
	switch ns {
	case settings.Global, settings.Secure, settings.System:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedNamespace, string(ns))
	}
}
