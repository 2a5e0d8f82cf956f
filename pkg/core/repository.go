package core

import "context"

// StoreIO is the minimal contract service operations need: read the whole
// snapshot, write the whole snapshot. Both Repository and Transaction
// satisfy it, which lets the same service logic run directly against
// durable storage or against a staged copy.
type StoreIO interface {
	// Load reads the current snapshot. A missing slot yields an empty
	// store, not an error.
	Load(ctx context.Context) (*Store, error)

	// Save persists the entire snapshot, replacing the previous one.
	Save(ctx context.Context, st *Store) error
}

// Repository defines the contract for the durable store slot. Adhering to
// this interface keeps the core independent of the underlying storage
// mechanism (single JSON file, SQL, key-value, ...).
type Repository interface {
	StoreIO

	// Initialize ensures the underlying storage is ready (create the slot
	// and its parent directory, recover a corrupt slot).
	Initialize(ctx context.Context) error
}

// Transaction defines the contract for a unit of work. Load and Save hit a
// staged snapshot; nothing reaches durable storage before Commit. The
// conflict policy is last-writer-wins: a commit replaces whatever another
// writer stored in the meantime.
type Transaction interface {
	StoreIO

	// Commit persists the staged snapshot atomically.
	Commit(ctx context.Context) error

	// Rollback discards the staged snapshot.
	Rollback(ctx context.Context) error
}

// Transactional extends Repository to support transactions.
type Transactional interface {
	Repository

	// Begin starts a new transaction on a fresh snapshot.
	Begin(ctx context.Context) (Transaction, error)
}

// Watchable is implemented by repositories that can observe external
// writes to durable storage (another process replacing the slot).
type Watchable interface {
	Watch(ctx context.Context) (<-chan Event, error)
}
