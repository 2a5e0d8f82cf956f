package core_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roger5791/notekeeper/pkg/core"
)

func sampleStore() *core.Store {
	return &core.Store{
		Version: core.StoreVersion,
		Notebooks: []core.Notebook{
			{
				ID:   "nb-1",
				Name: "Journal",
				Notes: []core.Note{
					{ID: "n-2", NotebookID: "nb-1", Title: "Second", Text: "b", PostedOn: 200},
					{ID: "n-1", NotebookID: "nb-1", Title: "First", Text: "a", PostedOn: 100},
				},
			},
			{
				ID:    "nb-2",
				Name:  "Work",
				Notes: []core.Note{{ID: "n-3", NotebookID: "nb-2", Title: "Third", Text: "c", PostedOn: 300}},
			},
		},
	}
}

func TestNewID(t *testing.T) {
	t.Run("Non Empty", func(t *testing.T) {
		require.NotEmpty(t, core.NewID())
	})

	t.Run("Distinct Under Rapid Generation", func(t *testing.T) {
		seen := make(map[string]bool)
		for i := 0; i < 10000; i++ {
			id := core.NewID()
			require.False(t, seen[id], "duplicate id %q after %d generations", id, i)
			seen[id] = true
		}
	})
}

func TestStoreLookups(t *testing.T) {
	st := sampleStore()

	t.Run("Notebook Hit", func(t *testing.T) {
		nb := st.Notebook("nb-2")
		require.NotNil(t, nb)
		assert.Equal(t, "Work", nb.Name)
	})

	t.Run("Notebook Miss", func(t *testing.T) {
		assert.Nil(t, st.Notebook("missing"))
		// Exact equality: no loose matching on similar-looking IDs.
		assert.Nil(t, st.Notebook("NB-1"))
		assert.Nil(t, st.Notebook(""))
	})

	t.Run("NotebookIndex", func(t *testing.T) {
		assert.Equal(t, 0, st.NotebookIndex("nb-1"))
		assert.Equal(t, 1, st.NotebookIndex("nb-2"))
		assert.Equal(t, -1, st.NotebookIndex("missing"))
	})

	t.Run("Note Scans All Notebooks", func(t *testing.T) {
		n, owner := st.Note("n-3")
		require.NotNil(t, n)
		require.NotNil(t, owner)
		assert.Equal(t, "Third", n.Title)
		assert.Equal(t, "nb-2", owner.ID)
	})

	t.Run("Note Miss", func(t *testing.T) {
		n, owner := st.Note("missing")
		assert.Nil(t, n)
		assert.Nil(t, owner)
	})

	t.Run("NoteIndex", func(t *testing.T) {
		nb := st.Notebook("nb-1")
		require.NotNil(t, nb)
		assert.Equal(t, 0, nb.NoteIndex("n-2"))
		assert.Equal(t, 1, nb.NoteIndex("n-1"))
		assert.Equal(t, -1, nb.NoteIndex("n-3"))
	})

	t.Run("Lookup Returns Mutable Pointer", func(t *testing.T) {
		st := sampleStore()
		st.Notebook("nb-1").Name = "Renamed"
		assert.Equal(t, "Renamed", st.Notebooks[0].Name)
	})
}

func TestStoreClone(t *testing.T) {
	st := sampleStore()
	cp := st.Clone()

	require.Equal(t, st, cp)

	cp.Notebooks[0].Name = "Changed"
	cp.Notebooks[0].Notes[0].Title = "Changed"
	assert.Equal(t, "Journal", st.Notebooks[0].Name)
	assert.Equal(t, "Second", st.Notebooks[0].Notes[0].Title)
}

func TestStoreNormalize(t *testing.T) {
	t.Run("Nil Slices Become Empty", func(t *testing.T) {
		st := &core.Store{Notebooks: []core.Notebook{{ID: "nb", Name: "x"}}}
		st.Normalize()
		require.NotNil(t, st.Notebooks)
		require.NotNil(t, st.Notebooks[0].Notes)
		assert.Empty(t, st.Notebooks[0].Notes)
	})

	t.Run("Keeps Decoded Version", func(t *testing.T) {
		st := &core.Store{}
		st.Normalize()
		assert.Equal(t, 0, st.Version)
	})
}

func TestStoreWireFormat(t *testing.T) {
	// The on-disk shape predates this implementation and must not drift.
	st := sampleStore()
	data, err := json.Marshal(st)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Contains(t, raw, "notebooks")

	nb := raw["notebooks"].([]any)[0].(map[string]any)
	assert.Equal(t, "nb-1", nb["id"])
	assert.Equal(t, "Journal", nb["name"])

	note := nb["notes"].([]any)[0].(map[string]any)
	for _, key := range []string{"id", "notebookId", "title", "text", "postedOn"} {
		assert.Contains(t, note, key)
	}

	t.Run("Legacy Payload Without Version", func(t *testing.T) {
		legacy := []byte(`{"notebooks":[{"id":"x","name":"Old","notes":[]}]}`)
		var st core.Store
		require.NoError(t, json.Unmarshal(legacy, &st))
		st.Normalize()
		assert.Equal(t, 0, st.Version)
		require.Len(t, st.Notebooks, 1)
		assert.Equal(t, "Old", st.Notebooks[0].Name)
	})
}
