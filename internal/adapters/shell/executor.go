// Package shell provides the shell executor adapter.
package shell

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.trai.ch/voltdev/internal/core/domain"
	"go.trai.ch/voltdev/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct{}

// NewExecutor creates a new Executor.
func NewExecutor() *Executor {
	return &Executor{}
}

// Execute runs the command and blocks until it exits.
// The environment is os.Environ() with cmd.Env applied on top.
// When ctx carries a Vertex, output is teed into it.
func (e *Executor) Execute(ctx context.Context, cmd domain.Command, stdout, stderr io.Writer) domain.ExecResult {
	res := domain.ExecResult{Command: cmd}

	if cmd.Name == "" {
		res.ExitCode = -1
		res.Err = zerr.New("empty command")
		return res
	}

	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...) //nolint:gosec // commands come from trusted configuration
	if cmd.Dir != "" {
		c.Dir = cmd.Dir
	}
	c.Env = resolveEnvironment(os.Environ(), cmd.Env)

	if v, ok := ports.VertexFromContext(ctx); ok {
		stdout = teeWriter(stdout, v.Stdout())
		stderr = teeWriter(stderr, v.Stderr())
	}
	c.Stdout = orDiscard(stdout)
	c.Stderr = orDiscard(stderr)

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
		} else {
			res.ExitCode = -1 // not started, or killed by a signal
		}
		res.Err = zerr.With(zerr.With(zerr.Wrap(err, "command failed"), "command", cmd.String()), "exit_code", res.ExitCode)
	}

	return res
}

func teeWriter(w, extra io.Writer) io.Writer {
	if w == nil {
		return extra
	}
	if extra == nil {
		return w
	}
	return io.MultiWriter(w, extra)
}

func orDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	if len(overrides) == 0 {
		return sysEnv
	}

	result := make([]string, 0, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, _, ok := strings.Cut(entry, "=")
		if ok {
			if _, overridden := overrides[k]; overridden {
				continue
			}
		}
		result = append(result, entry)
	}
	for k, v := range overrides {
		result = append(result, k+"="+v)
	}
	return result
}
