package fs_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roger5791/notekeeper/pkg/core"
)

func TestTransaction(t *testing.T) {
	ctx := context.Background()

	t.Run("Staged Changes Invisible Until Commit", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		tx, err := repo.Begin(ctx)
		require.NoError(t, err)

		st, err := tx.Load(ctx)
		require.NoError(t, err)
		st.Notebooks = append(st.Notebooks, core.Notebook{ID: core.NewID(), Name: "Staged", Notes: []core.Note{}})
		require.NoError(t, tx.Save(ctx, st))

		// The slot still holds the old state.
		outside, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, outside.Notebooks)

		require.NoError(t, tx.Commit(ctx))

		outside, err = repo.Load(ctx)
		require.NoError(t, err)
		require.Len(t, outside.Notebooks, 1)
		assert.Equal(t, "Staged", outside.Notebooks[0].Name)
	})

	t.Run("Rollback Discards", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		tx, err := repo.Begin(ctx)
		require.NoError(t, err)

		st, err := tx.Load(ctx)
		require.NoError(t, err)
		st.Notebooks = append(st.Notebooks, core.Notebook{ID: "x", Name: "Discarded"})
		require.NoError(t, tx.Save(ctx, st))
		require.NoError(t, tx.Rollback(ctx))

		outside, err := repo.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, outside.Notebooks)
	})

	t.Run("Closed Transaction Rejects Use", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))

		tx, err := repo.Begin(ctx)
		require.NoError(t, err)
		require.NoError(t, tx.Commit(ctx))

		_, err = tx.Load(ctx)
		require.Error(t, err)
		require.Error(t, tx.Save(ctx, core.NewStore()))
		require.Error(t, tx.Commit(ctx))
		// Rollback after close stays a no-op.
		require.NoError(t, tx.Rollback(ctx))
	})

	t.Run("Service Batch Through Transaction", func(t *testing.T) {
		repo, _ := setupRepo(t)
		require.NoError(t, repo.Initialize(ctx))
		svc := core.NewService(repo)

		err := svc.WithTransaction(ctx, func(tx *core.Service) error {
			nb, err := tx.CreateNotebook(ctx, "Journal")
			if err != nil {
				return err
			}
			if _, err := tx.CreateNote(ctx, nb.ID, "a", ""); err != nil {
				return err
			}
			_, err = tx.CreateNote(ctx, nb.ID, "b", "")
			return err
		})
		require.NoError(t, err)

		notebooks, err := svc.Notebooks(ctx)
		require.NoError(t, err)
		require.Len(t, notebooks, 1)
		require.Len(t, notebooks[0].Notes, 2)
		// Ordering survives the staged batch: newest first.
		assert.Equal(t, "b", notebooks[0].Notes[0].Title)
		assert.Equal(t, "a", notebooks[0].Notes[1].Title)
	})
}
