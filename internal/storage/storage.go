package storage

import "errors"

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Storage keys for client-persisted state. The names are an implementation
// detail, not a public contract.
const (
	KeyToken   = "token"
	KeyTheme   = "theme"
	KeyProfile = "profile"
)

// Store persists small pieces of client state (bearer token, theme
// preference, cached profile snapshot) between sessions.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
