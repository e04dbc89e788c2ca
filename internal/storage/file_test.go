package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"command-forge/internal/generator"
	"command-forge/internal/spec"
)

func newFileStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(filepath.Join(t.TempDir(), "commands.json"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func artifactNamed(name string) *generator.Artifact {
	return &generator.Artifact{
		Name:        name,
		Description: "test command",
		Type:        spec.TriggerSlash,
		Code:        "module.exports = {};",
		Category:    "custom",
	}
}

func TestFileStoreSaveLoad(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, artifactNamed("greet"), false))

	loaded, err := s.Load(ctx, "greet")
	require.NoError(t, err)
	assert.Equal(t, "greet", loaded.Name)
	assert.Equal(t, "module.exports = {};", loaded.Code)
}

func TestFileStoreConflict(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, artifactNamed("greet"), false))
	err := s.Save(ctx, artifactNamed("greet"), false)
	assert.ErrorIs(t, err, ErrConflict)

	// overwrite replaces
	updated := artifactNamed("greet")
	updated.Description = "updated"
	require.NoError(t, s.Save(ctx, updated, true))

	loaded, err := s.Load(ctx, "greet")
	require.NoError(t, err)
	assert.Equal(t, "updated", loaded.Description)
}

func TestFileStoreNotFound(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	_, err := s.Load(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrNotFound)
}

func TestFileStoreList(t *testing.T) {
	s := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, artifactNamed("b"), false))
	require.NoError(t, s.Save(ctx, artifactNamed("a"), false))

	list, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, "b", list[1].Name)

	require.NoError(t, s.Delete(ctx, "a"))
	list, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Name)
}
