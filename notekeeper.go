package notekeeper

import (
	"log/slog"

	"github.com/Roger5791/notekeeper/internal/platform"
	"github.com/Roger5791/notekeeper/pkg/core"
)

// --- Types ---

// Store is the full persisted collection of notebooks.
type Store = core.Store

// Notebook is a named container of notes.
type Notebook = core.Notebook

// Note is a titled, timestamped text entry belonging to exactly one notebook.
type Note = core.Note

// NotePatch carries partial fields for UpdateNote.
type NotePatch = core.NotePatch

// Service handles the business logic for notebooks and notes.
type Service = core.Service

// Repository is the contract storage adapters implement.
type Repository = core.Repository

// Transaction is a unit of work over a staged snapshot.
type Transaction = core.Transaction

// Event represents an external change to the store slot.
type Event = core.Event

// EventType represents the kind of change observed on durable storage.
type EventType = core.EventType

const (
	EventCreate = core.EventCreate
	EventModify = core.EventModify
	EventDelete = core.EventDelete
)

// --- Errors ---

var (
	ErrNotebookNotFound   = core.ErrNotebookNotFound
	ErrNoteNotFound       = core.ErrNoteNotFound
	ErrCorruptStore       = core.ErrCorruptStore
	ErrStorageUnavailable = core.ErrStorageUnavailable
	ErrReadOnly           = core.ErrReadOnly
	ErrEmptyName          = core.ErrEmptyName
	ErrEmptyID            = core.ErrEmptyID
)

// --- Configuration ---

// Option defines a functional option for configuring notekeeper.
type Option = platform.Option

// WithAutoInit enables automatic initialization of the store slot
// (creates the parent directory and an empty store).
func WithAutoInit(auto bool) Option {
	return platform.WithAutoInit(auto)
}

// WithMustExist ensures the store slot must already exist.
func WithMustExist(must bool) Option {
	return platform.WithMustExist(must)
}

// WithReadOnly enables read-only mode.
func WithReadOnly(enabled bool) Option {
	return platform.WithReadOnly(enabled)
}

// WithLogger sets the logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository allows injecting a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithAdapter allows specifying the storage adapter to use by name.
func WithAdapter(name string) Option {
	return platform.WithAdapter(name)
}

// WithWatcherErrorHandler registers a callback for errors occurring during
// the Watch loop.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a new notekeeper Service bound to the store slot at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a repository explicitly.
func Init(path string, opts ...Option) (core.Repository, error) {
	return platform.Init(path, opts...)
}

// --- Identity ---

// NewID returns a fresh collision-resistant identifier.
func NewID() string {
	return core.NewID()
}
