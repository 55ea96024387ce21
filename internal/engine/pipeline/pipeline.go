// Package pipeline runs the configure, build and compile sequence for the Volt compiler.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

// Step names recorded through telemetry.
const (
	StepClear     = "clear"
	StepPrepare   = "prepare"
	StepConfigure = "configure"
	StepBuild     = "build"
	StepLocate    = "locate"
	StepCompile   = "compile"
	StepDigest    = "digest"
)

// RunOptions holds the per-invocation inputs of a pipeline run.
type RunOptions struct {
	Mode        domain.BuildMode
	Platform    domain.Platform
	Layout      domain.Layout
	ClearScreen bool
	// Strict turns a failing compiler invocation into an error.
	Strict bool
}

// Pipeline sequences the build system, artifact lookup and compiler invocation.
type Pipeline struct {
	build     ports.BuildSystem
	locator   ports.ArtifactLocator
	executor  ports.Executor
	hasher    ports.Hasher
	logger    ports.Logger
	telemetry ports.Telemetry
	stdout    io.Writer
	stderr    io.Writer
}

// New creates a Pipeline. Child output goes to the process streams until SetOutput is called.
func New(
	build ports.BuildSystem,
	locator ports.ArtifactLocator,
	executor ports.Executor,
	hasher ports.Hasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Pipeline {
	return &Pipeline{
		build:     build,
		locator:   locator,
		executor:  executor,
		hasher:    hasher,
		logger:    logger,
		telemetry: telemetry,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetOutput redirects the output of the clear and compile steps.
func (p *Pipeline) SetOutput(stdout, stderr io.Writer) {
	p.stdout = stdout
	p.stderr = stderr
}

// Run executes clear, prepare, configure, build, locate, compile and digest in order.
// Each step starts only after the previous one succeeded; a failing configure or build
// returns before the artifact is located or the compiler runs.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (domain.RunReport, error) {
	layout := opts.Layout
	report := domain.RunReport{
		Mode:      opts.Mode,
		Toolchain: domain.SelectToolchain(opts.Mode),
		Platform:  opts.Platform,
	}

	if opts.ClearScreen {
		p.clear(ctx, opts.Platform)
	}

	if err := p.step(ctx, StepPrepare, func(context.Context) error {
		return p.build.Prepare(layout)
	}); err != nil {
		return report, err
	}

	p.logger.Info(fmt.Sprintf("Configuring %s build (%s, %s)",
		opts.Mode, report.Toolchain.CompilerFlag, report.Toolchain.Generator))
	if err := p.step(ctx, StepConfigure, func(ctx context.Context) error {
		return stepError(domain.ErrConfigureFailed, p.build.Configure(ctx, layout, report.Toolchain))
	}); err != nil {
		return report, err
	}

	p.logger.Info("Building " + layout.BuildDir)
	if err := p.step(ctx, StepBuild, func(ctx context.Context) error {
		return stepError(domain.ErrBuildFailed, p.build.Build(ctx, layout))
	}); err != nil {
		return report, err
	}

	if err := p.step(ctx, StepLocate, func(context.Context) error {
		name, err := p.locator.Locate(layout, domain.DefaultProjectName(layout.Root))
		report.ProjectName = name
		return err
	}); err != nil {
		return report, err
	}

	cmd := CompilerInvocation(layout, report.ProjectName, opts.Platform)
	report.Binary = cmd.Name
	report.Artifact = filepath.Join(layout.Root, layout.ArtifactName(opts.Platform))

	p.logger.Info("Running " + cmd.String())
	err := p.step(ctx, StepCompile, func(ctx context.Context) error {
		report.Compile = p.executor.Execute(ctx, cmd, p.stdout, p.stderr)
		if report.Compile.Success() {
			return nil
		}
		return resultError(report.Compile)
	})
	if err != nil {
		if opts.Strict {
			return report, errors.Join(domain.ErrCompilerFailed, err)
		}
		p.logger.Warn(compileWarning(report.Compile), "command", report.Compile.Command.String())
		return report, nil
	}

	_ = p.step(ctx, StepDigest, func(context.Context) error {
		sum, err := p.hasher.HashFile(report.Artifact)
		if err != nil {
			p.logger.Warn("artifact not digested", "path", report.Artifact, "error", err.Error())
			return err
		}
		report.ArtifactDigest = sum
		return nil
	})

	return report, nil
}

// clear runs the platform clear command. Failure only produces a warning.
func (p *Pipeline) clear(ctx context.Context, platform domain.Platform) {
	_ = p.step(ctx, StepClear, func(ctx context.Context) error {
		cmd := platform.ClearCommand()
		res := p.executor.Execute(ctx, cmd, p.stdout, p.stderr)
		if res.Success() {
			return nil
		}
		p.logger.Warn("failed to clear the terminal", "command", cmd.String(), "exit_code", res.ExitCode)
		return resultError(res)
	})
}

func (p *Pipeline) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := p.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

// stepError converts an unsuccessful build system result into an error matching both
// sentinel and domain.ErrBuildExecutionFailed.
func stepError(sentinel error, res domain.ExecResult) error {
	if res.Success() {
		return nil
	}
	return errors.Join(domain.ErrBuildExecutionFailed, sentinel, resultError(res))
}

func resultError(res domain.ExecResult) error {
	if res.Err != nil {
		return res.Err
	}
	return zerr.With(zerr.With(zerr.New("command exited unsuccessfully"),
		"command", res.Command.String()), "exit_code", res.ExitCode)
}

func compileWarning(res domain.ExecResult) string {
	if res.ExitCode < 0 {
		return "compiler could not be started: " + res.Command.Name
	}
	return fmt.Sprintf("compiler exited with status %d", res.ExitCode)
}
