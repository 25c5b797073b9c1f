package dbpool

import "strings"

// BackendKind identifies the storage engine a pool targets.
type BackendKind int

const (
	// EmbeddedFile is the in-process single-file engine (SQLite).
	EmbeddedFile BackendKind = iota

	// Networked is a relational server reached over the network
	// (PostgreSQL).
	Networked
)

func (k BackendKind) String() string {
	switch k {
	case EmbeddedFile:
		return "embedded"
	case Networked:
		return "networked"
	default:
		return "unknown"
	}
}

// SelectBackend decides which storage engine the primary pool targets.
//
// The presence of a networked-server URL always wins; only in its absence is
// the embedded-file backend selected. There is no other signal, so the
// decision is deterministic for any Environment value.
func SelectBackend(env Environment) BackendKind {
	if strings.TrimSpace(env.ServerURL) != "" {
		return Networked
	}

	return EmbeddedFile
}
