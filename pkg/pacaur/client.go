// Package pacaur drives an AUR helper (pacaur by default) on behalf of pacyao.
package pacaur

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"pacyao/internal/executor"
	"pacyao/pkg/search"

	"github.com/samber/lo"
)

// ErrHelperNotFound is returned when the helper binary is not on PATH.
var ErrHelperNotFound = errors.New("AUR helper not found in PATH")

// Runner executes helper commands. *executor.Executor implements it.
type Runner interface {
	// Run executes a command with inherited output.
	Run(ctx context.Context, name string, args ...string) error

	// OutputEnv executes a command with extra environment and captures stdout.
	OutputEnv(ctx context.Context, env []string, name string, args ...string) (string, error)

	// LookPath reports whether name is an executable on PATH.
	LookPath(name string) bool
}

// Options configures a Client.
type Options struct {
	Helper      string   // Helper binary, e.g. "pacaur"
	Locale      string   // LC_ALL value for searches; empty leaves it untouched
	Operations  []string // Top-level operation flags forwarded verbatim
	RemoveFlags []string // Flags for removing orphans, e.g. "-Rns"
}

// Client wraps the helper's command-line interface.
type Client struct {
	binary      string
	locale      string
	operations  []string
	removeFlags []string
	exec        Runner
}

// New creates a new Client that runs commands through r.
func New(opts Options, r Runner) *Client {
	if r == nil {
		r = executor.New(false, false)
	}

	binary := opts.Helper
	if binary == "" {
		binary = "pacaur"
	}

	removeFlags := opts.RemoveFlags
	if len(removeFlags) == 0 {
		removeFlags = []string{"-Rns"}
	}

	return &Client{
		binary:      binary,
		locale:      opts.Locale,
		operations:  opts.Operations,
		removeFlags: removeFlags,
		exec:        r,
	}
}

// Binary returns the helper binary name.
func (c *Client) Binary() string {
	return c.binary
}

// IsAvailable returns true if the helper is installed.
func (c *Client) IsAvailable() bool {
	return c.exec.LookPath(c.binary)
}

// IsOperation returns true if arg starts with one of the helper's
// top-level operation flags (e.g. "-Syu" starts with "-S").
func (c *Client) IsOperation(arg string) bool {
	if len(arg) < 2 {
		return false
	}
	return lo.Contains(c.operations, arg[:2])
}

// Search runs the helper's search with terms as a single argument.
func (c *Client) Search(ctx context.Context, terms string) ([]search.Record, error) {
	output, err := c.exec.OutputEnv(ctx, c.searchEnv(), c.binary, "-Ss", terms)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// The helper exits non-zero when nothing matches
		if executor.ExitCode(err) > 0 && strings.TrimSpace(output) == "" {
			return []search.Record{}, nil
		}
		return nil, fmt.Errorf("%s search failed: %w", c.binary, err)
	}

	records, err := search.ParseReader(strings.NewReader(output))
	if err != nil {
		return nil, fmt.Errorf("failed to read search output: %w", err)
	}
	return records, nil
}

// searchEnv forces a neutral locale so the output stays parseable.
func (c *Client) searchEnv() []string {
	if c.locale == "" {
		return nil
	}
	return []string{"LC_ALL=" + c.locale}
}

// Install installs packages, streaming the helper's output.
func (c *Client) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"-S"}, packages...)
	return c.exec.Run(ctx, c.binary, args...)
}

// Upgrade synchronizes the databases and upgrades all packages.
func (c *Client) Upgrade(ctx context.Context) error {
	return c.exec.Run(ctx, c.binary, "-Syu")
}

// Passthrough forwards args to the helper unchanged.
func (c *Client) Passthrough(ctx context.Context, args []string) error {
	return c.exec.Run(ctx, c.binary, args...)
}

// Orphans lists packages installed as dependencies that nothing requires.
func (c *Client) Orphans(ctx context.Context) ([]string, error) {
	output, err := c.exec.OutputEnv(ctx, nil, c.binary, "-Qdtq")
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		// The query exits non-zero when there are no orphans
		if executor.ExitCode(err) > 0 && strings.TrimSpace(output) == "" {
			return []string{}, nil
		}
		return nil, fmt.Errorf("%s orphan query failed: %w", c.binary, err)
	}

	return parseOrphans(output), nil
}

// parseOrphans splits the quiet query output into package names.
func parseOrphans(output string) []string {
	lines := lo.Map(strings.Split(output, "\n"), func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Compact(lines)
}

// RemoveOrphans removes orphaned packages and returns their names.
// Nothing is run when there are no orphans.
func (c *Client) RemoveOrphans(ctx context.Context) ([]string, error) {
	orphans, err := c.Orphans(ctx)
	if err != nil {
		return nil, err
	}
	if len(orphans) == 0 {
		return orphans, nil
	}

	args := append(append([]string{}, c.removeFlags...), orphans...)
	if err := c.exec.Run(ctx, c.binary, args...); err != nil {
		return orphans, err
	}
	return orphans, nil
}
