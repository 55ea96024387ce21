package domain

import (
	"github.com/kballard/go-shellquote"
)

// Command describes a single child process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current process directory.
	Dir string
	// Env holds overrides applied on top of the process environment.
	Env map[string]string
}

// Argv returns the full argument vector including the command name.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// String renders the command as a shell-quoted line for display.
func (c Command) String() string {
	return shellquote.Join(c.Argv()...)
}

// ExecResult is the outcome of running a Command.
// Callers must inspect it; a zero ExitCode with a nil Err is the only success.
type ExecResult struct {
	Command  Command
	ExitCode int
	// Err is set when the process could not be started or exited unsuccessfully.
	Err error
}

// Success reports whether the command ran and exited with status zero.
func (r ExecResult) Success() bool {
	return r.Err == nil && r.ExitCode == 0
}
