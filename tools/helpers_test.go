package tools

import (
	"context"
	"testing"

	gagiteck "github.com/gagiteck/gagiteck-go"
)

func withWorkDir(t *testing.T, dir string) context.Context {
	t.Helper()
	return gagiteck.WithContextWorkDir(context.Background(), dir)
}
