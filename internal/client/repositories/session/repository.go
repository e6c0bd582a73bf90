// Package session persists the small set of session keys the client keeps
// between runs: the auth token, the cached user object and the client
// installation id.
package session

import "context"

// Repository is a durable string key/value store.
type Repository interface {
	// Get returns the value for key, or common.ErrorNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key.
	Clear(ctx context.Context) error
}
