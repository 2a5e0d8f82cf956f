package core

import "github.com/google/uuid"

// NewID returns a fresh identifier for a notebook or note.
// Random UUIDs replace wall-clock identifiers: two entities created within
// the same millisecond must still get distinct IDs.
func NewID() string {
	return uuid.NewString()
}
