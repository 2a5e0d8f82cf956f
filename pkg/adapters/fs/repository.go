// Package fs persists the note store as a single JSON file, the local
// equivalent of the browser local-storage slot the format originates from.
// The whole store is read before every operation and written back
// wholesale after every mutation; writes are atomic (temp file + rename).
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Roger5791/notekeeper/pkg/core"
)

// DefaultSlotName is the file name used when the configured path points at
// a directory.
const DefaultSlotName = "notekeeper.json"

// CorruptBackupSuffix is appended to an undecodable slot before a fresh
// one replaces it.
const CorruptBackupSuffix = ".corrupt"

// Config holds the configuration for the file-backed repository.
type Config struct {
	Path         string // slot file, or a directory to place DefaultSlotName in
	AutoInit     bool   // create parent directory and an empty slot on Initialize
	MustExist    bool   // refuse to initialize when the slot is missing
	ReadOnly     bool   // reject Save with core.ErrReadOnly
	Logger       *slog.Logger
	ErrorHandler func(error) // invoked for async watcher failures
}

// Repository implements core.Repository on a single JSON file.
type Repository struct {
	Path   string
	config Config

	mu            sync.RWMutex
	watcherActive bool
	lastSave      *time.Time
}

// NewRepository creates a new file-backed repository.
func NewRepository(config Config) *Repository {
	path := config.Path
	if path == "" {
		path = DefaultSlotName
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, DefaultSlotName)
	}

	return &Repository{
		Path:   path,
		config: config,
	}
}

// Begin starts a new transaction on a fresh snapshot.
func (r *Repository) Begin(ctx context.Context) (core.Transaction, error) {
	st, err := r.Load(ctx)
	if err != nil {
		return nil, err
	}
	return newTransaction(r, st), nil
}

// Initialize prepares the slot: creates the parent directory and an empty
// store when nothing exists yet, and recovers a corrupt slot by moving it
// aside and starting fresh.
func (r *Repository) Initialize(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.config.MustExist {
		if _, err := os.Stat(r.Path); os.IsNotExist(err) {
			return fmt.Errorf("store slot does not exist: %s", r.Path)
		}
	}

	if r.config.AutoInit && !r.config.ReadOnly {
		if err := os.MkdirAll(filepath.Dir(r.Path), 0755); err != nil {
			return fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	data, err := os.ReadFile(r.Path)
	switch {
	case os.IsNotExist(err):
		if !r.config.AutoInit || r.config.ReadOnly {
			return nil
		}
		// First use: persist an empty store eagerly so the slot exists.
		return r.writeStore(core.NewStore())
	case err != nil:
		return fmt.Errorf("%w: reading %s: %v", core.ErrStorageUnavailable, r.Path, err)
	}

	st := &core.Store{}
	if jsonErr := json.Unmarshal(data, st); jsonErr != nil {
		if r.config.ReadOnly {
			return fmt.Errorf("%w: %s: %v", core.ErrCorruptStore, r.Path, jsonErr)
		}

		// Keep the bad payload around for manual salvage and start fresh.
		backup := r.Path + CorruptBackupSuffix
		if r.config.Logger != nil {
			r.config.Logger.Warn("store slot is corrupt, starting fresh",
				"path", r.Path,
				"backup", backup,
				"error", jsonErr,
			)
		}
		if err := os.Rename(r.Path, backup); err != nil {
			return fmt.Errorf("failed to back up corrupt store: %w", err)
		}
		return r.writeStore(core.NewStore())
	}

	return nil
}

// Load reads and decodes the current snapshot. A missing slot yields an
// empty store so first use works without explicit initialization.
func (r *Repository) Load(ctx context.Context) (*core.Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data, err := os.ReadFile(r.Path)
	if os.IsNotExist(err) {
		return core.NewStore(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", core.ErrStorageUnavailable, r.Path, err)
	}

	st := &core.Store{}
	if err := json.Unmarshal(data, st); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrCorruptStore, r.Path, err)
	}
	st.Normalize()

	return st, nil
}

// Save persists the entire snapshot, replacing the previous one.
func (r *Repository) Save(ctx context.Context, st *core.Store) error {
	if r.config.ReadOnly {
		return core.ErrReadOnly
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.writeStore(st)
}

// writeStore encodes and atomically writes the snapshot.
// Callers hold r.mu.
func (r *Repository) writeStore(st *core.Store) error {
	st.Version = core.StoreVersion

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}
	data = append(data, '\n')

	if err := writeFileAtomic(r.Path, data, 0644); err != nil {
		return fmt.Errorf("%w: writing %s: %v", core.ErrStorageUnavailable, r.Path, err)
	}

	now := time.Now()
	r.lastSave = &now
	return nil
}
