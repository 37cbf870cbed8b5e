package executor

import (
	"context"
	"io"
)

// Executor defines the interface for executing external commands
type Executor interface {
	// ExecuteWithInput runs the command with stdin connected to input.
	ExecuteWithInput(ctx context.Context, input io.Reader, name string, args ...string) (string, error)
	// LookPath reports whether name is an executable on PATH.
	LookPath(name string) bool
}
