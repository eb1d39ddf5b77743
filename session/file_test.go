package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

func TestFileStore_SaveAndLoad(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	s := gagiteck.NewSession()
	s.Messages = append(s.Messages,
		gagiteck.NewUserMessage("what is the weather?"),
		gagiteck.NewAssistantMessage("sunny"),
	)
	s.Metadata.Model = "claude-3-sonnet"
	s.Metadata.NumTurns = 2
	s.Metadata.TotalCost = decimal.RequireFromString("0.0123")
	s.Metadata.TotalTokens = gagiteck.Usage{InputTokens: 100, OutputTokens: 50}

	require.NoError(t, store.Save(ctx, s))

	loaded, err := store.Load(ctx, s.ID)
	require.NoError(t, err)

	assert.Equal(t, s.ID, loaded.ID)
	require.Len(t, loaded.Messages, 2)
	assert.Equal(t, "sunny", loaded.Messages[1].Content)
	assert.Equal(t, "claude-3-sonnet", loaded.Metadata.Model)
	assert.Equal(t, 2, loaded.Metadata.NumTurns)
	assert.True(t, loaded.Metadata.TotalCost.Equal(decimal.RequireFromString("0.0123")))
	assert.Equal(t, int64(100), loaded.Metadata.TotalTokens.InputTokens)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "sessions")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestFileStore_LoadNotFound(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load(context.Background(), "sess_missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestFileStore_Delete(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	s := gagiteck.NewSession()
	require.NoError(t, store.Save(ctx, s))
	require.NoError(t, store.Delete(ctx, s.ID))

	_, err = store.Load(ctx, s.ID)
	assert.Error(t, err)

	err = store.Delete(ctx, s.ID)
	assert.Error(t, err)
}

func TestFileStore_ListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, gagiteck.NewSession()))
	require.NoError(t, store.Save(ctx, gagiteck.NewSession()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "corrupt.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	sessions, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, sessions, 2)
}

func TestFileStore_SaveNil(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	assert.Error(t, store.Save(context.Background(), nil))
}
