package platform_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roger5791/notekeeper/internal/platform"
	"github.com/Roger5791/notekeeper/pkg/core"
)

// countingRepo tracks whether the factory ran initialization.
type countingRepo struct {
	inits int
}

func (r *countingRepo) Load(ctx context.Context) (*core.Store, error)  { return core.NewStore(), nil }
func (r *countingRepo) Save(ctx context.Context, st *core.Store) error { return nil }
func (r *countingRepo) Initialize(ctx context.Context) error           { r.inits++; return nil }

func TestInit(t *testing.T) {
	t.Run("Default FS Adapter", func(t *testing.T) {
		slot := filepath.Join(t.TempDir(), "store.json")

		repo, err := platform.Init(slot)
		require.NoError(t, err)
		require.NotNil(t, repo)

		// Initialize ran: the empty store exists and loads.
		st, err := repo.Load(context.Background())
		require.NoError(t, err)
		assert.Empty(t, st.Notebooks)
	})

	t.Run("Injected Repository Returned As Is", func(t *testing.T) {
		injected := &countingRepo{}

		repo, err := platform.Init("ignored", platform.WithRepository(injected))
		require.NoError(t, err)
		assert.Same(t, injected, repo)
		// The owner of an injected repository initializes it.
		assert.Zero(t, injected.inits)
	})

	t.Run("Unknown Adapter", func(t *testing.T) {
		_, err := platform.Init("x", platform.WithAdapter("s3"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown adapter")
	})

	t.Run("MustExist Propagates", func(t *testing.T) {
		slot := filepath.Join(t.TempDir(), "missing.json")
		_, err := platform.Init(slot, platform.WithMustExist(true))
		require.Error(t, err)
	})
}

func TestNew(t *testing.T) {
	slot := filepath.Join(t.TempDir(), "store.json")

	svc, err := platform.New(slot)
	require.NoError(t, err)

	ctx := context.Background()
	nb, err := svc.CreateNotebook(ctx, "Journal")
	require.NoError(t, err)

	got, err := svc.NotebookByID(ctx, nb.ID)
	require.NoError(t, err)
	assert.Equal(t, "Journal", got.Name)

	t.Run("ReadOnly Option Reaches Adapter", func(t *testing.T) {
		roSvc, err := platform.New(slot, platform.WithReadOnly(true))
		require.NoError(t, err)

		_, err = roSvc.CreateNotebook(ctx, "Nope")
		require.ErrorIs(t, err, core.ErrReadOnly)

		// Reads still work.
		notebooks, err := roSvc.Notebooks(ctx)
		require.NoError(t, err)
		assert.Len(t, notebooks, 1)
	})
}
