package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

func TestBashTool_Name(t *testing.T) {
	tool := &BashTool{}
	assert.Equal(t, "Bash", tool.Name())
}

func TestBashTool_Execute_SimpleCommand(t *testing.T) {
	tool := &BashTool{}
	result, err := tool.Execute(context.Background(), BashInput{
		Command: "echo hello",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "hello")
	assert.Equal(t, 0, result.Metadata["exit_code"])
}

func TestBashTool_Execute_ExitCode(t *testing.T) {
	tool := &BashTool{}
	result, err := tool.Execute(context.Background(), BashInput{
		Command: "exit 42",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, 42, result.Metadata["exit_code"])
}

func TestBashTool_Execute_EmptyCommand(t *testing.T) {
	tool := &BashTool{}
	result, err := tool.Execute(context.Background(), BashInput{
		Command: "",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Content, "command is required")
}

func TestBashTool_Execute_Stderr(t *testing.T) {
	tool := &BashTool{}
	result, err := tool.Execute(context.Background(), BashInput{
		Command: "echo error_msg >&2",
	})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "error_msg")
}

func TestBashTool_Execute_Timeout(t *testing.T) {
	tool := &BashTool{}
	timeoutMs := 500
	result, err := tool.Execute(context.Background(), BashInput{
		Command: "sleep 10",
		Timeout: &timeoutMs,
	})
	require.NoError(t, err)
	// Should either time out or surface a non-zero exit code
	assert.True(t, result.IsError)
}

func TestBashTool_Execute_WorkDirFromContext(t *testing.T) {
	dir := t.TempDir()
	ctx := withWorkDir(t, dir)

	tool := &BashTool{}
	result, err := tool.Execute(ctx, BashInput{Command: "pwd"})
	require.NoError(t, err)
	assert.Contains(t, result.Content, dir)
}

func TestBashTool_Execute_EnvFromContext(t *testing.T) {
	ctx := gagiteck.WithContextEnv(context.Background(), map[string]string{
		"GAGITECK_TEST_VAR": "injected_value",
	})

	tool := &BashTool{}
	result, err := tool.Execute(ctx, BashInput{Command: "echo $GAGITECK_TEST_VAR"})
	require.NoError(t, err)
	assert.Contains(t, result.Content, "injected_value")
}
