package ports

import (
	"context"

	"go.trai.ch/voltdev/internal/core/domain"
)

// BuildSystem defines the interface for the native build system driving the compiler build.
//
//go:generate go run go.uber.org/mock/mockgen -source=build_system.go -destination=mocks/mock_build_system.go -package=mocks
type BuildSystem interface {
	// Prepare makes sure the build output directory exists.
	Prepare(layout domain.Layout) error

	// Configure runs a fresh configure step with the toolchain arguments.
	Configure(ctx context.Context, layout domain.Layout, tc domain.Toolchain) domain.ExecResult

	// Build runs the build step. Callers only invoke it after a successful Configure.
	Build(ctx context.Context, layout domain.Layout) domain.ExecResult
}
