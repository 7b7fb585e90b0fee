// Package kvstore defines the flat key-value contract the roster
// repositories persist through.
package kvstore

import (
	"context"
	"strings"
)

// Store maps string keys to string payloads. Implementations give no
// atomicity across keys and no compare-and-swap.
type Store interface {
	// Get reports found=false for a missing key; that is not an error.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	// Remove of a missing key is a no-op.
	Remove(ctx context.Context, key string) error
	// ListKeys returns the keys starting with prefix, sorted ascending.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// Key builds a namespaced key from a category prefix and an entity id.
func Key(namespace, id string) string {
	return namespace + id
}

// TrimNamespace returns the entity id of key, or false when key lies
// outside namespace.
func TrimNamespace(namespace, key string) (string, bool) {
	if !strings.HasPrefix(key, namespace) {
		return "", false
	}
	return key[len(namespace):], true
}
