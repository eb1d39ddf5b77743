package tools

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/creack/pty"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

const (
	defaultBashTimeoutMs = 120_000
	maxBashTimeoutMs     = 600_000
	maxOutputBytes       = 30_000
)

// BashInput defines the input for the Bash tool.
type BashInput struct {
	Command     string `json:"command" jsonschema:"required,description=The command to execute"`
	Description string `json:"description,omitempty" jsonschema:"description=Description of what this command does"`
	Timeout     *int   `json:"timeout,omitempty" jsonschema:"description=Timeout in milliseconds (max 600000)"`
}

// BashTool executes shell commands.
type BashTool struct{}

var _ gagiteck.Tool[BashInput] = (*BashTool)(nil)

func (t *BashTool) Name() string        { return "Bash" }
func (t *BashTool) Description() string { return "Execute a bash command" }

func (t *BashTool) Execute(ctx context.Context, input BashInput) (*gagiteck.ToolResult, error) {
	if input.Command == "" {
		return gagiteck.ErrorResult("command is required"), nil
	}

	timeoutMs := defaultBashTimeoutMs
	if input.Timeout != nil {
		timeoutMs = *input.Timeout
		if timeoutMs <= 0 {
			timeoutMs = defaultBashTimeoutMs
		}
		if timeoutMs > maxBashTimeoutMs {
			timeoutMs = maxBashTimeoutMs
		}
	}

	timeout := time.Duration(timeoutMs) * time.Millisecond
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := newBashCommand(cmdCtx, input.Command)
	if dir := gagiteck.ContextWorkDir(cmdCtx); dir != "" {
		cmd.Dir = dir
	}

	// Use PTY for more realistic output capture
	ptmx, err := pty.Start(cmd)
	if err != nil {
		// Fallback to regular execution if PTY fails
		return t.executeWithoutPTY(cmdCtx, input.Command, timeoutMs)
	}
	defer ptmx.Close()

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, ptmx) // PTY read returns EIO on process exit, ignore

	waitErr := cmd.Wait()

	output := buf.String()
	if len(output) > maxOutputBytes {
		output = output[:maxOutputBytes] + "\n... [output truncated]"
	}

	exitCode := 0
	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else if cmdCtx.Err() == context.DeadlineExceeded {
			return gagiteck.ErrorResult(fmt.Sprintf("command timed out after %dms", timeoutMs)), nil
		} else {
			exitCode = -1
		}
	}

	result := gagiteck.TextResult(output)
	result.Metadata = map[string]any{
		"exit_code": exitCode,
	}
	if exitCode != 0 {
		result.IsError = true
	}

	return result, nil
}

func (t *BashTool) executeWithoutPTY(ctx context.Context, command string, timeoutMs int) (*gagiteck.ToolResult, error) {
	cmd := newBashCommand(ctx, command)
	if dir := gagiteck.ContextWorkDir(ctx); dir != "" {
		cmd.Dir = dir
	}
	output, err := cmd.CombinedOutput()

	text := string(output)
	if len(text) > maxOutputBytes {
		text = text[:maxOutputBytes] + "\n... [output truncated]"
	}

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else if ctx.Err() == context.DeadlineExceeded {
			return gagiteck.ErrorResult(fmt.Sprintf("command timed out after %dms", timeoutMs)), nil
		} else {
			exitCode = -1
		}
	}

	result := gagiteck.TextResult(text)
	result.Metadata = map[string]any{
		"exit_code": exitCode,
	}
	if exitCode != 0 {
		result.IsError = true
	}

	return result, nil
}

// newBashCommand builds the bash invocation, injecting any context-scoped
// environment variables on top of the process environment.
func newBashCommand(ctx context.Context, command string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	if env := gagiteck.ContextEnv(ctx); len(env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range env {
			cmd.Env = append(cmd.Env, k+"="+v)
		}
	}
	return cmd
}
