// Package storage is the client's persisted key/value store: the local
// equivalent of browser storage, holding the session token, its expiry and
// the cached current user.
package storage

import "context"

// Repository is a string key/value store.
//
// Get reports ok=false for a missing key rather than an error.
type Repository interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, keys ...string) error
}
