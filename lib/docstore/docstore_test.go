package docstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"), "things")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestPutGetDelete(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("things", "a", &testDoc{Name: "first", Count: 1}))

	var got testDoc
	require.NoError(t, store.Get("things", "a", &got))
	assert.Equal(t, "first", got.Name)
	assert.Equal(t, 1, got.Count)

	require.NoError(t, store.Delete("things", "a"))
	err := store.Get("things", "a", &got)
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestDeleteMissing(t *testing.T) {
	store := openTestStore(t)
	assert.ErrorIs(t, store.Delete("things", "nope"), ErrNoDocument)
}

func TestUnknownCollection(t *testing.T) {
	store := openTestStore(t)
	var got testDoc
	assert.Error(t, store.Get("missing", "a", &got))
}

func TestForEach(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("things", "a", &testDoc{Name: "first"}))
	require.NoError(t, store.Put("things", "b", &testDoc{Name: "second"}))

	seen := map[string]bool{}
	err := store.View(func(tx *Tx) error {
		return tx.ForEach("things", func(id string, raw []byte) error {
			seen[id] = true
			return nil
		})
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, seen)
}

func TestUpdateIsAtomic(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Put("things", "a", &testDoc{Name: "keep"}))

	// A failing transaction must roll back every write it made.
	err := store.Update(func(tx *Tx) error {
		if err := tx.Put("things", "b", &testDoc{Name: "discard"}); err != nil {
			return err
		}
		return assert.AnError
	})
	assert.Error(t, err)

	var got testDoc
	assert.ErrorIs(t, store.Get("things", "b", &got), ErrNoDocument)
	assert.NoError(t, store.Get("things", "a", &got))
}
