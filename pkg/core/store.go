// Package core defines the notekeeper domain: the store snapshot with its
// notebooks and notes, the lookup helpers operating on a snapshot, and the
// contracts storage adapters implement.
package core

import "fmt"

// StoreVersion is the schema version stamped on every save.
// Stores written before the version field existed decode with Version 0
// and are treated as the same shape.
const StoreVersion = 1

// Note is a titled, timestamped text entry belonging to exactly one notebook.
// NotebookID is a denormalized back-reference to the owning notebook; notes
// are always reached through their notebook, never through this field.
type Note struct {
	ID         string `json:"id"`
	NotebookID string `json:"notebookId"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	PostedOn   int64  `json:"postedOn"` // Unix milliseconds
}

// Notebook is a named container of notes, ordered most recently created first.
type Notebook struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Notes []Note `json:"notes"`
}

// Store is the full persisted collection of notebooks. It is the sole unit
// of persistence: adapters serialize and deserialize it wholesale, and a
// loaded snapshot is the exclusive source of truth until the next load.
type Store struct {
	Version   int        `json:"version,omitempty"`
	Notebooks []Notebook `json:"notebooks"`
}

// NewStore returns an empty store at the current schema version.
func NewStore() *Store {
	return &Store{
		Version:   StoreVersion,
		Notebooks: []Notebook{},
	}
}

// Normalize brings a freshly decoded store to canonical shape: nil slices
// become empty ones so callers can append and range without guards.
// The version is left as decoded.
func (s *Store) Normalize() {
	if s.Notebooks == nil {
		s.Notebooks = []Notebook{}
	}
	for i := range s.Notebooks {
		if s.Notebooks[i].Notes == nil {
			s.Notebooks[i].Notes = []Note{}
		}
	}
}

// Clone returns a deep copy of the store.
func (s *Store) Clone() *Store {
	out := &Store{
		Version:   s.Version,
		Notebooks: make([]Notebook, len(s.Notebooks)),
	}
	for i, nb := range s.Notebooks {
		cp := nb
		cp.Notes = make([]Note, len(nb.Notes))
		copy(cp.Notes, nb.Notes)
		out.Notebooks[i] = cp
	}
	return out
}

// EventType represents the kind of change observed on durable storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change to the store slot, typically another
// process replacing it. Consumers reload to pick up the new state.
type Event struct {
	Type      EventType
	Path      string
	Timestamp int64 // Unix timestamp
}

func (e Event) String() string {
	return fmt.Sprintf("%s %s", e.Type, e.Path)
}
