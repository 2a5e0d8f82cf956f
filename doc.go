// Package notekeeper is the Composition Root for the notekeeper library.
//
// It connects the core business logic (Domain Layer) with the storage
// adapters (Persistence Layer) using the Hexagonal Architecture pattern.
//
// Philosophy:
//
// notekeeper is an embedded notebook/note store. The whole collection of
// notebooks lives in a single serialized slot (by default one JSON file),
// is reloaded before every operation, and written back wholesale after
// every mutation. The format is the one a browser note app keeps in local
// storage, so existing slots load unchanged.
//
// Features:
//
//   - **Hexagonal Architecture**: Core domain is isolated from persistence details.
//   - **Atomic Saves**: Slot replacement via temp file + rename, never partial writes.
//   - **Explicit Errors**: Not-found, corrupt and unavailable-storage conditions are
//     sentinel errors, never silent no-ops.
//   - **Transactions**: Batch many operations into one staged snapshot and one write.
//   - **Change Watching**: Observe external writers of the slot (another process,
//     another "tab") via fsnotify.
//   - **Extensible**: Designed to support other backends (SQL, key-value) via
//     `core.Repository`.
//
// Usage:
//
//	// Initialize service with functional options
//	svc, err := notekeeper.New("./notekeeper.json",
//		notekeeper.WithAutoInit(true),
//		notekeeper.WithLogger(logger),
//	)
//
//	// Create a notebook and a note
//	nb, err := svc.CreateNotebook(ctx, "Journal")
//	note, err := svc.CreateNote(ctx, nb.ID, "Day one", "Started the journal.")
package notekeeper
