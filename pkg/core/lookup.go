package core

// Lookup helpers. All of them operate on the snapshot they are called on,
// use exact string equality, and return the first match. The store is small
// and rebuilt from storage on every operation, so linear scans are fine.

// Notebook returns the notebook with the given ID, or nil when absent.
// The pointer refers into the store, so mutations through it are visible
// on the snapshot.
func (s *Store) Notebook(id string) *Notebook {
	for i := range s.Notebooks {
		if s.Notebooks[i].ID == id {
			return &s.Notebooks[i]
		}
	}
	return nil
}

// NotebookIndex returns the position of the notebook with the given ID,
// or -1 when absent.
func (s *Store) NotebookIndex(id string) int {
	for i := range s.Notebooks {
		if s.Notebooks[i].ID == id {
			return i
		}
	}
	return -1
}

// Note scans notebooks in store order, then notes in notebook order, and
// returns the first note with the given ID along with its owning notebook.
// Both are nil when the ID is unknown.
func (s *Store) Note(id string) (*Note, *Notebook) {
	for i := range s.Notebooks {
		nb := &s.Notebooks[i]
		for j := range nb.Notes {
			if nb.Notes[j].ID == id {
				return &nb.Notes[j], nb
			}
		}
	}
	return nil, nil
}

// NoteIndex returns the position of the note with the given ID within this
// notebook, or -1 when absent.
func (nb *Notebook) NoteIndex(id string) int {
	for i := range nb.Notes {
		if nb.Notes[i].ID == id {
			return i
		}
	}
	return -1
}
