package gagiteck

import "context"

type contextKey int

const (
	ctxKeyWorkDir contextKey = iota
	ctxKeyEnv
)

// WithContextWorkDir returns a context with the working directory set.
// Built-in file tools resolve relative paths against it.
func WithContextWorkDir(ctx context.Context, dir string) context.Context {
	return context.WithValue(ctx, ctxKeyWorkDir, dir)
}

// ContextWorkDir returns the working directory from context, or empty string.
func ContextWorkDir(ctx context.Context) string {
	if v, ok := ctx.Value(ctxKeyWorkDir).(string); ok {
		return v
	}
	return ""
}

// WithContextEnv returns a context with environment variables for tool execution.
func WithContextEnv(ctx context.Context, env map[string]string) context.Context {
	return context.WithValue(ctx, ctxKeyEnv, env)
}

// ContextEnv returns the environment variables from context, or nil.
func ContextEnv(ctx context.Context) map[string]string {
	if v, ok := ctx.Value(ctxKeyEnv).(map[string]string); ok {
		return v
	}
	return nil
}
