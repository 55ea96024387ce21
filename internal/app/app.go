// Package app implements the application layer for voltdev.
package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/voltdev/internal/adapters/cmake" //nolint:depguard // Build system is configured per run
	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/voltdev/internal/engine/formatter"
	"go.trai.ch/voltdev/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	locator      ports.ArtifactLocator
	hasher       ports.Hasher
	logger       ports.Logger
	telemetry    ports.Telemetry
	formatter    *formatter.Formatter
	stdout       io.Writer
	stderr       io.Writer
}

// RunOptions holds the command line inputs of a build run.
type RunOptions struct {
	// Mode is the raw mode token; see domain.ParseBuildMode.
	Mode       string
	Root       string
	ConfigPath string
	// GOOS overrides the host platform when non-empty.
	GOOS    string
	NoClear bool
	Strict  bool
}

// FormatOptions holds the command line inputs of a formatting sweep.
type FormatOptions struct {
	Root       string
	ConfigPath string
	// Path is the directory to format, relative to Root unless absolute. Empty means Root.
	Path string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	locator ports.ArtifactLocator,
	hasher ports.Hasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
	f *formatter.Formatter,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		locator:      locator,
		hasher:       hasher,
		logger:       logger,
		telemetry:    telemetry,
		formatter:    f,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
	}
}

// WithOutput sets child process output writers. Used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	if a.formatter != nil {
		a.formatter.SetOutput(stdout, stderr)
	}
	return a
}

// Run configures and builds the compiler, then runs it on the test input.
func (a *App) Run(ctx context.Context, opts RunOptions) (domain.RunReport, error) {
	settings, err := a.configLoader.Load(opts.Root, opts.ConfigPath)
	if err != nil {
		return domain.RunReport{}, zerr.Wrap(err, "failed to load configuration")
	}

	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	bs := cmake.New(a.executor, cmake.Options{
		Binary:        settings.CMake,
		ConfigureArgs: settings.ConfigureArgs,
		BuildArgs:     settings.BuildArgs,
		Stdout:        a.stdout,
		Stderr:        a.stderr,
	})
	p := pipeline.New(bs, a.locator, a.executor, a.hasher, a.logger, a.telemetry)
	p.SetOutput(a.stdout, a.stderr)

	report, err := p.Run(ctx, pipeline.RunOptions{
		Mode:        domain.ParseBuildMode(opts.Mode),
		Platform:    domain.NewPlatform(goos),
		Layout:      settings.Layout,
		ClearScreen: settings.ClearScreen && !opts.NoClear,
		Strict:      settings.StrictCompile || opts.Strict,
	})
	if err != nil {
		return report, err
	}

	if report.Compile.Success() {
		a.logger.Info(fmt.Sprintf("Compiled %s with %s (%s)", rel(settings.Layout.Root, report.Artifact),
			report.ProjectName, digestLabel(report.ArtifactDigest)))
	}
	return report, nil
}

// Format runs the source formatter over the configured tree.
func (a *App) Format(ctx context.Context, opts FormatOptions) (domain.FormatReport, error) {
	settings, err := a.configLoader.Load(opts.Root, opts.ConfigPath)
	if err != nil {
		return domain.FormatReport{}, zerr.Wrap(err, "failed to load configuration")
	}

	target := settings.Layout.Root
	if opts.Path != "" {
		target = opts.Path
		if !filepath.IsAbs(target) {
			target = filepath.Join(settings.Layout.Root, target)
		}
	}

	// The walker only prunes below its root, so an excluded target is refused here.
	if rel, err := filepath.Rel(settings.Layout.Root, target); err == nil && settings.Formatter.Filter.Excludes(rel) {
		a.logger.Warn("path is excluded from formatting", "path", rel)
		return domain.FormatReport{}, nil
	}

	report, err := a.formatter.Format(ctx, target, settings.Formatter)
	if err != nil {
		return report, err
	}

	summary := fmt.Sprintf("Formatted %d files (%d changed, %d failed)",
		len(report.Matched), len(report.Changed), len(report.Failed))
	if len(report.Failed) > 0 {
		a.logger.Warn(summary)
	} else {
		a.logger.Info(summary)
	}
	return report, nil
}

// Close flushes telemetry.
func (a *App) Close() error {
	return a.telemetry.Close()
}

func rel(root, path string) string {
	if r, err := filepath.Rel(root, path); err == nil {
		return r
	}
	return path
}

func digestLabel(sum string) string {
	if sum == "" {
		return "no digest"
	}
	return "xxh64:" + sum
}
