// Package ports defines the core interfaces for the application.
package ports

import (
	"context"
	"io"

	"go.trai.ch/voltdev/internal/core/domain"
)

// Executor defines the interface for running child processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs cmd to completion, streaming its output to stdout and stderr.
	//
	// It never returns a bare error: start failures and non-zero exits are both
	// reported through the returned ExecResult, which the caller must inspect.
	Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) domain.ExecResult
}
