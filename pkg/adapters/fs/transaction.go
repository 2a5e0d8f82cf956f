package fs

import (
	"context"
	"fmt"
	"sync"

	"github.com/Roger5791/notekeeper/pkg/core"
)

// Transaction implements core.Transaction on a staged snapshot. The
// snapshot is loaded once at Begin; Load and Save inside the transaction
// never touch the slot, and Commit writes the staged state in a single
// atomic replace. Last-writer-wins against concurrent committers.
type Transaction struct {
	repo   *Repository
	staged *core.Store
	mu     sync.Mutex
	closed bool
}

func newTransaction(repo *Repository, staged *core.Store) *Transaction {
	return &Transaction{repo: repo, staged: staged}
}

// Load returns the staged snapshot.
func (t *Transaction) Load(ctx context.Context) (*core.Store, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil, fmt.Errorf("transaction closed")
	}
	return t.staged, nil
}

// Save replaces the staged snapshot.
func (t *Transaction) Save(ctx context.Context, st *core.Store) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction closed")
	}
	t.staged = st
	return nil
}

// Commit persists the staged snapshot.
func (t *Transaction) Commit(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return fmt.Errorf("transaction already closed")
	}

	if err := t.repo.Save(ctx, t.staged); err != nil {
		return err
	}
	t.closed = true
	return nil
}

// Rollback discards the staged snapshot.
func (t *Transaction) Rollback(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.staged = nil
	t.closed = true
	return nil
}
