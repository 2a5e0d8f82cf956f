package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// NotePatch carries partial fields for UpdateNote. Nil fields are left
// untouched on the note.
type NotePatch struct {
	Title *string
	Text  *string
}

// Service handles the business logic for notebooks and notes.
//
// Every operation follows the same protocol: reload the snapshot from
// storage, apply itself to the fresh copy, and (for mutations) persist the
// whole snapshot back before returning. The slot is shared mutable state
// between processes; two writers racing on it resolve as last-writer-wins.
// Use Watch to detect external writes.
type Service struct {
	io   StoreIO
	repo Repository
}

// NewService creates a new Service on top of a repository.
func NewService(repo Repository) *Service {
	return &Service{io: repo, repo: repo}
}

// CreateNotebook appends a notebook with a fresh ID and the given name.
func (s *Service) CreateNotebook(ctx context.Context, name string) (Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Notebook{}, fmt.Errorf("create notebook: %w", ErrEmptyName)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return Notebook{}, err
	}

	nb := Notebook{
		ID:    NewID(),
		Name:  name,
		Notes: []Note{},
	}
	st.Notebooks = append(st.Notebooks, nb)

	if err := s.io.Save(ctx, st); err != nil {
		return Notebook{}, err
	}
	return nb, nil
}

// CreateNote prepends a note to the given notebook, so listing returns the
// newest note first. The note carries a fresh ID, the owning notebook's ID,
// and the creation timestamp.
func (s *Service) CreateNote(ctx context.Context, notebookID, title, text string) (Note, error) {
	if notebookID == "" {
		return Note{}, fmt.Errorf("create note: %w", ErrEmptyID)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	nb := st.Notebook(notebookID)
	if nb == nil {
		return Note{}, fmt.Errorf("create note in %q: %w", notebookID, ErrNotebookNotFound)
	}

	n := Note{
		ID:         NewID(),
		NotebookID: nb.ID,
		Title:      title,
		Text:       text,
		PostedOn:   time.Now().UnixMilli(),
	}
	nb.Notes = append([]Note{n}, nb.Notes...)

	if err := s.io.Save(ctx, st); err != nil {
		return Note{}, err
	}
	return n, nil
}

// Notebooks returns all notebooks in store order.
func (s *Service) Notebooks(ctx context.Context) ([]Notebook, error) {
	st, err := s.io.Load(ctx)
	if err != nil {
		return nil, err
	}
	return st.Notebooks, nil
}

// NotebookByID returns a single notebook.
func (s *Service) NotebookByID(ctx context.Context, id string) (Notebook, error) {
	if id == "" {
		return Notebook{}, fmt.Errorf("get notebook: %w", ErrEmptyID)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return Notebook{}, err
	}

	nb := st.Notebook(id)
	if nb == nil {
		return Notebook{}, fmt.Errorf("notebook %q: %w", id, ErrNotebookNotFound)
	}
	return *nb, nil
}

// Notes returns the notes of a notebook, newest first.
func (s *Service) Notes(ctx context.Context, notebookID string) ([]Note, error) {
	nb, err := s.NotebookByID(ctx, notebookID)
	if err != nil {
		return nil, err
	}
	return nb.Notes, nil
}

// NoteByID scans all notebooks for the note with the given ID.
func (s *Service) NoteByID(ctx context.Context, noteID string) (Note, error) {
	if noteID == "" {
		return Note{}, fmt.Errorf("get note: %w", ErrEmptyID)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	n, _ := st.Note(noteID)
	if n == nil {
		return Note{}, fmt.Errorf("note %q: %w", noteID, ErrNoteNotFound)
	}
	return *n, nil
}

// RenameNotebook overwrites the notebook's name. Other notebooks are
// untouched.
func (s *Service) RenameNotebook(ctx context.Context, id, name string) (Notebook, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Notebook{}, fmt.Errorf("rename notebook: %w", ErrEmptyName)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return Notebook{}, err
	}

	nb := st.Notebook(id)
	if nb == nil {
		return Notebook{}, fmt.Errorf("rename notebook %q: %w", id, ErrNotebookNotFound)
	}
	nb.Name = name

	if err := s.io.Save(ctx, st); err != nil {
		return Notebook{}, err
	}
	return *nb, nil
}

// UpdateNote merges the patch into the note in place. ID, owning notebook
// and creation timestamp are preserved.
func (s *Service) UpdateNote(ctx context.Context, noteID string, patch NotePatch) (Note, error) {
	if noteID == "" {
		return Note{}, fmt.Errorf("update note: %w", ErrEmptyID)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return Note{}, err
	}

	n, _ := st.Note(noteID)
	if n == nil {
		return Note{}, fmt.Errorf("update note %q: %w", noteID, ErrNoteNotFound)
	}

	if patch.Title != nil {
		n.Title = *patch.Title
	}
	if patch.Text != nil {
		n.Text = *patch.Text
	}

	if err := s.io.Save(ctx, st); err != nil {
		return Note{}, err
	}
	return *n, nil
}

// DeleteNotebook removes the notebook and every note it contains. Notes
// are never orphaned: they only exist inside their notebook.
func (s *Service) DeleteNotebook(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("delete notebook: %w", ErrEmptyID)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return err
	}

	i := st.NotebookIndex(id)
	if i < 0 {
		return fmt.Errorf("delete notebook %q: %w", id, ErrNotebookNotFound)
	}
	st.Notebooks = append(st.Notebooks[:i], st.Notebooks[i+1:]...)

	return s.io.Save(ctx, st)
}

// DeleteNote removes one note from a notebook and returns the remaining
// notes of that notebook.
func (s *Service) DeleteNote(ctx context.Context, notebookID, noteID string) ([]Note, error) {
	if notebookID == "" || noteID == "" {
		return nil, fmt.Errorf("delete note: %w", ErrEmptyID)
	}

	st, err := s.io.Load(ctx)
	if err != nil {
		return nil, err
	}

	nb := st.Notebook(notebookID)
	if nb == nil {
		return nil, fmt.Errorf("delete note in %q: %w", notebookID, ErrNotebookNotFound)
	}

	i := nb.NoteIndex(noteID)
	if i < 0 {
		return nil, fmt.Errorf("delete note %q: %w", noteID, ErrNoteNotFound)
	}
	nb.Notes = append(nb.Notes[:i], nb.Notes[i+1:]...)

	if err := s.io.Save(ctx, st); err != nil {
		return nil, err
	}
	return nb.Notes, nil
}

// WithTransaction executes fn against a single staged snapshot. All
// operations on the service passed to fn see each other's changes, and one
// atomic write persists them together on success. An error from fn rolls
// everything back.
func (s *Service) WithTransaction(ctx context.Context, fn func(tx *Service) error) error {
	tr, ok := s.repo.(Transactional)
	if !ok {
		return errors.New("repository does not support transactions")
	}

	tx, err := tr.Begin(ctx)
	if err != nil {
		return err
	}

	if err := fn(&Service{io: tx, repo: s.repo}); err != nil {
		tx.Rollback(ctx)
		return err
	}
	return tx.Commit(ctx)
}

// Begin initiates a transaction manually.
// Exposed for power users or custom workflows.
func (s *Service) Begin(ctx context.Context) (Transaction, error) {
	tr, ok := s.repo.(Transactional)
	if !ok {
		return nil, errors.New("repository does not support transactions")
	}
	return tr.Begin(ctx)
}

// Watch observes external changes to the store slot if the repository
// supports it.
func (s *Service) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.repo.(Watchable)
	if !ok {
		return nil, errors.New("repository does not support watching")
	}
	return w.Watch(ctx)
}
