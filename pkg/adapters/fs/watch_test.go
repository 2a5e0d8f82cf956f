package fs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Roger5791/notekeeper/pkg/core"
)

func TestWatch(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	repo, _ := setupRepo(t)
	require.NoError(t, repo.Initialize(ctx))

	events, err := repo.Watch(ctx)
	require.NoError(t, err)

	// Give the watcher a moment to arm before triggering the change.
	time.Sleep(200 * time.Millisecond)

	st := core.NewStore()
	st.Notebooks = append(st.Notebooks, core.Notebook{ID: "nb", Name: "Journal", Notes: []core.Note{}})
	require.NoError(t, repo.Save(ctx, st))

	select {
	case e, ok := <-events:
		require.True(t, ok, "event channel closed before delivering an event")
		require.NotZero(t, e.Type)
		require.Equal(t, repo.Path, e.Path)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for store change event")
	}

	// Cancellation drains and closes the stream.
	cancel()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("event channel not closed after cancel")
		}
	}
}
