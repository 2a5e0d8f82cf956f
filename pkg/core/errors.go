package core

import "errors"

// Common errors. Adapters wrap these with context via fmt.Errorf and %w;
// callers dispatch with errors.Is.
var (
	ErrNotebookNotFound   = errors.New("notebook not found")
	ErrNoteNotFound       = errors.New("note not found")
	ErrCorruptStore       = errors.New("store data is corrupt")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrReadOnly           = errors.New("store is in read-only mode")
	ErrEmptyName          = errors.New("name cannot be empty")
	ErrEmptyID            = errors.New("id cannot be empty")
)
