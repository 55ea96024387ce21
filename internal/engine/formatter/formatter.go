// Package formatter runs the source formatter over the project's C and C++ files.
package formatter

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

// Formatter walks a tree and formats every matching file in place, one at a time.
type Formatter struct {
	walker    ports.SourceWalker
	hasher    ports.Hasher
	executor  ports.Executor
	logger    ports.Logger
	telemetry ports.Telemetry
	stdout    io.Writer
	stderr    io.Writer
}

// New creates a Formatter writing formatter output to the process streams.
func New(
	walker ports.SourceWalker,
	hasher ports.Hasher,
	executor ports.Executor,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Formatter {
	return &Formatter{
		walker:    walker,
		hasher:    hasher,
		executor:  executor,
		logger:    logger,
		telemetry: telemetry,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// SetOutput redirects the formatter's child output.
func (f *Formatter) SetOutput(stdout, stderr io.Writer) {
	f.stdout = stdout
	f.stderr = stderr
}

// Format formats every file under root accepted by settings.Filter.
// A failing file is logged and recorded in the report; the sweep continues with the next one.
// An unreadable subdirectory is skipped with a warning. Only a fatal traversal error
// or context cancellation ends the sweep early.
func (f *Formatter) Format(ctx context.Context, root string, settings domain.FormatterSettings) (domain.FormatReport, error) {
	var report domain.FormatReport

	for rel, err := range f.walker.WalkFiles(root, settings.Filter.ExcludeDirs) {
		if err != nil {
			if rel == "" {
				return report, err
			}
			f.logger.Warn("skipped unreadable directory", "path", rel, "error", err.Error())
			continue
		}
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if !settings.Filter.Match(rel) {
			continue
		}

		report.Matched = append(report.Matched, rel)
		f.logger.Info("Formatting " + rel)

		changed, err := f.formatFile(ctx, root, rel, settings)
		if err != nil {
			f.logger.Error(err)
			report.Failed = append(report.Failed, rel)
			continue
		}
		if changed {
			report.Changed = append(report.Changed, rel)
		}
	}

	return report, nil
}

func (f *Formatter) formatFile(ctx context.Context, root, rel string, settings domain.FormatterSettings) (bool, error) {
	ctx, vertex := f.telemetry.Record(ctx, "format "+rel)

	path := filepath.Join(root, rel)
	before, err := f.hasher.HashFile(path)
	if err != nil {
		vertex.Complete(err)
		return false, err
	}

	cmd := Invocation(root, rel, settings)
	res := f.executor.Execute(ctx, cmd, f.stdout, f.stderr)
	if !res.Success() {
		err := res.Err
		if err == nil {
			err = zerr.With(zerr.New("formatter exited unsuccessfully"), "exit_code", res.ExitCode)
		}
		err = zerr.With(zerr.Wrap(err, "failed to format file"), "path", rel)
		vertex.Complete(err)
		return false, err
	}

	after, err := f.hasher.HashFile(path)
	vertex.Complete(err)
	if err != nil {
		return false, err
	}
	return before != after, nil
}

// Invocation returns the formatter command for the file rel below root.
func Invocation(root, rel string, settings domain.FormatterSettings) domain.Command {
	return domain.Command{
		Name: settings.Command,
		Args: append(slices.Clone(settings.Args), rel),
		Dir:  root,
	}
}
