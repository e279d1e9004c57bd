// Package prefs implements the durable preference store: a key-value
// repository surviving process restarts. It holds exactly two keys, the
// session token and the selected tone.
package prefs

import "context"

// Well-known preference keys.
const (
	KeyToken = "token"
	KeyTone  = "tone"
)

// Repository is the durable key-value store surface. Get returns an empty
// string for missing keys; absence and emptiness are equivalent for both
// stored values.
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
