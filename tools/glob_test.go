package tools

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobTool_Name(t *testing.T) {
	tool := &GlobTool{}
	assert.Equal(t, "Glob", tool.Name())
}

func TestGlobTool_Execute_BasicMatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.go"), []byte("package b"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), []byte("text"), 0644))

	tool := &GlobTool{}
	result, err := tool.Execute(context.Background(), GlobInput{Pattern: "*.go", Path: dir})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	assert.Contains(t, result.Content, "a.go")
	assert.Contains(t, result.Content, "b.go")
	assert.NotContains(t, result.Content, "c.txt")
}

func TestGlobTool_Execute_RecursivePattern(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "nested", "deep")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "found.go"), []byte("package deep"), 0644))

	tool := &GlobTool{}
	result, err := tool.Execute(context.Background(), GlobInput{Pattern: "**/*.go", Path: dir})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content, "found.go")
}

func TestGlobTool_Execute_NoMatches(t *testing.T) {
	dir := t.TempDir()

	tool := &GlobTool{}
	result, err := tool.Execute(context.Background(), GlobInput{Pattern: "*.xyz", Path: dir})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "No files matched the pattern.", result.Content)
}

func TestGlobTool_Execute_WorkDirFromContext(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "workdir.go"), []byte("package w"), 0644))

	ctx := withWorkDir(t, dir)
	tool := &GlobTool{}
	result, err := tool.Execute(ctx, GlobInput{Pattern: "*.go"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Content, "workdir.go")
}

func TestGlobTool_Execute_EmptyPattern(t *testing.T) {
	tool := &GlobTool{}
	result, err := tool.Execute(context.Background(), GlobInput{})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
