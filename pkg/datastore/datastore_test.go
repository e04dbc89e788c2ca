package datastore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "store.json"))
	cfg.AutoSaveInterval = time.Hour
	cfg.BackupCount = 0
	s, err := NewWithConfig(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutGetDelete(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Put("a", doc{Name: "a", Count: 1}))

	var got doc
	require.NoError(t, s.Get("a", &got))
	assert.Equal(t, doc{Name: "a", Count: 1}, got)

	assert.True(t, s.Has("a"))
	require.NoError(t, s.Delete("a"))
	assert.False(t, s.Has("a"))

	assert.ErrorIs(t, s.Get("a", &got), ErrNoDocument)
	assert.ErrorIs(t, s.Delete("a"), ErrNoDocument)
}

func TestKeysSorted(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Put("b", doc{}))
	require.NoError(t, s.Put("a", doc{}))
	require.NoError(t, s.Put("c", doc{}))

	assert.Equal(t, []string{"a", "b", "c"}, s.Keys())
	assert.Equal(t, 3, s.Len())
}

func TestPersistenceAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	cfg := DefaultConfig(path)
	cfg.AutoSaveInterval = time.Hour
	cfg.BackupCount = 0

	s, err := NewWithConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Put("a", doc{Name: "a", Count: 7}))
	require.NoError(t, s.Close())

	s2, err := NewWithConfig(cfg)
	require.NoError(t, err)
	defer s2.Close()

	var got doc
	require.NoError(t, s2.Get("a", &got))
	assert.Equal(t, 7, got.Count)
}

func TestSaveSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	cfg := DefaultConfig(path)
	cfg.AutoSaveInterval = time.Hour
	cfg.BackupCount = 0

	s, err := NewWithConfig(cfg)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Put("a", doc{Name: "a"}))
	require.NoError(t, s.SaveNow())

	before, err := os.Stat(path)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, s.SaveNow())

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := New(path)
	assert.Error(t, err)
}
