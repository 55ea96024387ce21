// Package cmake drives the CMake configure and build steps.
package cmake

import (
	"context"
	"errors"
	"io"
	"os"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultBinary is the cmake executable looked up on PATH.
const DefaultBinary = "cmake"

const buildDirPerm = 0o750

var _ ports.BuildSystem = (*BuildSystem)(nil)

// Options configures a BuildSystem.
type Options struct {
	// Binary is the cmake executable. Empty means DefaultBinary.
	Binary string
	// ConfigureArgs are appended after the toolchain arguments of the configure step.
	ConfigureArgs []string
	// BuildArgs are appended to the build step.
	BuildArgs []string
	// Stdout and Stderr receive the child output. Nil means the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// BuildSystem implements ports.BuildSystem by invoking cmake.
type BuildSystem struct {
	executor ports.Executor
	opts     Options
}

// New creates a BuildSystem running commands through executor.
func New(executor ports.Executor, opts Options) *BuildSystem {
	if opts.Binary == "" {
		opts.Binary = DefaultBinary
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &BuildSystem{executor: executor, opts: opts}
}

// Prepare creates the build directory. An existing directory is not an error.
func (b *BuildSystem) Prepare(layout domain.Layout) error {
	path := layout.BuildPath()
	if err := os.MkdirAll(path, buildDirPerm); err != nil {
		return errors.Join(domain.ErrBuildDirCreateFailed, zerr.With(zerr.Wrap(err, "mkdir failed"), "path", path))
	}
	return nil
}

// Configure runs `cmake --fresh -S <src> -B <build>` with the toolchain flags.
func (b *BuildSystem) Configure(ctx context.Context, layout domain.Layout, tc domain.Toolchain) domain.ExecResult {
	return b.executor.Execute(ctx, ConfigureCommand(b.opts, layout, tc), b.opts.Stdout, b.opts.Stderr)
}

// Build runs `cmake --build <build>`.
func (b *BuildSystem) Build(ctx context.Context, layout domain.Layout) domain.ExecResult {
	return b.executor.Execute(ctx, BuildCommand(b.opts, layout), b.opts.Stdout, b.opts.Stderr)
}

// ConfigureCommand returns the configure invocation for layout and tc.
func ConfigureCommand(opts Options, layout domain.Layout, tc domain.Toolchain) domain.Command {
	args := []string{"--fresh", "-S", layout.SourceDir, "-B", layout.BuildDir}
	args = append(args, tc.ConfigureArgs()...)
	args = append(args, opts.ConfigureArgs...)
	return domain.Command{Name: binary(opts), Args: args, Dir: layout.Root}
}

// BuildCommand returns the build invocation for layout.
func BuildCommand(opts Options, layout domain.Layout) domain.Command {
	args := []string{"--build", layout.BuildDir}
	args = append(args, opts.BuildArgs...)
	return domain.Command{Name: binary(opts), Args: args, Dir: layout.Root}
}

func binary(opts Options) string {
	if opts.Binary == "" {
		return DefaultBinary
	}
	return opts.Binary
}
