package tools

import (
	"context"
	"path/filepath"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

// resolvePath makes a tool path absolute, resolving relative paths against
// the context working directory when one is set.
func resolvePath(ctx context.Context, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	if dir := gagiteck.ContextWorkDir(ctx); dir != "" {
		return filepath.Join(dir, path)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
