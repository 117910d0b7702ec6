// Package executor runs AUR helper commands.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// waitDelay is how long an interrupted command may take to exit.
var waitDelay = 10 * time.Second

// Executor runs external commands with dry-run and verbose support.
type Executor struct {
	dryRun  bool
	verbose bool

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a new Executor with the given options.
// Inherited output goes to the process's standard streams.
func New(dryRun, verbose bool) *Executor {
	return &Executor{
		dryRun:  dryRun,
		verbose: verbose,
		stdin:   os.Stdin,
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// SetStreams replaces the streams used for inherited I/O.
func (e *Executor) SetStreams(stdin io.Reader, stdout, stderr io.Writer) {
	e.stdin = stdin
	e.stdout = stdout
	e.stderr = stderr
}

// Run executes a command with inherited stdin, stdout and stderr.
func (e *Executor) Run(ctx context.Context, name string, args ...string) error {
	if e.dryRun {
		e.printDryRun(name, args)
		return nil
	}

	cmd := command(ctx, name, args...)
	cmd.Stdin = e.stdin
	cmd.Stdout = e.stdout
	cmd.Stderr = e.stderr

	e.printExec(name, args, nil)

	return cmd.Run()
}

// OutputEnv runs a command with extra KEY=VALUE environment entries and
// returns its stdout. Later entries override the inherited environment.
// Read-only queries still run in dry-run mode.
func (e *Executor) OutputEnv(ctx context.Context, env []string, name string, args ...string) (string, error) {
	cmd := command(ctx, name, args...)
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = e.stderr

	e.printExec(name, args, env)

	err := cmd.Run()
	return stdout.String(), err
}

// command builds a command that receives SIGINT, not SIGKILL, when ctx is
// done. It is killed only if it is still running after waitDelay.
func command(ctx context.Context, name string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = waitDelay
	return cmd
}

// LookPath reports whether name resolves to an executable.
func (e *Executor) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (e *Executor) printExec(name string, args []string, env []string) {
	if !e.verbose {
		return
	}
	prefix := ""
	if len(env) > 0 {
		prefix = strings.Join(env, " ") + " "
	}
	fmt.Fprintf(e.stderr, "Executing: %s%s %s\n", prefix, name, strings.Join(args, " "))
}

func (e *Executor) printDryRun(name string, args []string) {
	fmt.Fprintf(e.stdout, "[dry-run] Would execute: %s %s\n", name, strings.Join(args, " "))
}

// IsRoot returns true if the current process is running as root.
func IsRoot() bool {
	return os.Geteuid() == 0
}

// ExitCode returns the exit status carried by err, or -1 if there is none.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
