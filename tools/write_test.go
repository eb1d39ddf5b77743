package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTool_Name(t *testing.T) {
	tool := &WriteTool{}
	assert.Equal(t, "Write", tool.Name())
}

func TestWriteTool_Execute_BasicWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")

	tool := &WriteTool{}
	result, err := tool.Execute(context.Background(), WriteInput{
		FilePath: path,
		Content:  "hello world",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))
}

func TestWriteTool_Execute_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c", "out.txt")

	tool := &WriteTool{}
	result, err := tool.Execute(context.Background(), WriteInput{
		FilePath: path,
		Content:  "nested",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "nested", string(data))
}

func TestWriteTool_Execute_Overwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	tool := &WriteTool{}
	result, err := tool.Execute(context.Background(), WriteInput{
		FilePath: path,
		Content:  "new",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestWriteTool_Execute_RelativePathUsesWorkDir(t *testing.T) {
	dir := t.TempDir()

	ctx := withWorkDir(t, dir)
	tool := &WriteTool{}
	result, err := tool.Execute(ctx, WriteInput{
		FilePath: "rel.txt",
		Content:  "relative",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	data, err := os.ReadFile(filepath.Join(dir, "rel.txt"))
	require.NoError(t, err)
	assert.Equal(t, "relative", string(data))
}

func TestWriteTool_Execute_EmptyFilePath(t *testing.T) {
	tool := &WriteTool{}
	result, err := tool.Execute(context.Background(), WriteInput{Content: "x"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
