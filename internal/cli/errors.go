package cli

import (
	"context"
	"errors"

	"pacyao/internal/executor"
	"pacyao/pkg/selection"
)

var (
	// ErrNothingSelected is returned when the user picks no packages.
	ErrNothingSelected = errors.New("nothing selected")
)

// Exit codes returned by Execute.
const (
	ExitOK    = 0
	ExitError = 1
)

// isCancellation reports whether err means the user backed out:
// end of input, an interrupt at the prompt or a signal.
func isCancellation(ctx context.Context, err error) bool {
	if errors.Is(err, selection.ErrCancelled) || errors.Is(err, context.Canceled) {
		return true
	}
	return ctx.Err() != nil
}

// exitCode maps an operation error to the process exit status and
// reports it to the user where the helper has not already done so.
func (a *App) exitCode(ctx context.Context, err error) int {
	if err == nil || errors.Is(err, ErrNothingSelected) {
		return ExitOK
	}

	// The helper prints its own diagnostics; forward its status, also
	// when it exited because it was interrupted.
	if code := executor.ExitCode(err); code > 0 {
		return code
	}

	if isCancellation(ctx, err) {
		return ExitOK
	}

	if invalid, ok := selection.IsInvalid(err); ok {
		// A typo is not a failure, but say what was wrong with it.
		a.warnInvalid(invalid)
		return ExitOK
	}

	a.errOut.ErrorMsg("%v", err)
	return ExitError
}

// warnInvalid reports a rejected selection with a reminder of the syntax.
func (a *App) warnInvalid(err *selection.InvalidSelectionError) {
	a.errOut.WarningMsg("%v", err)
	a.errOut.MutedMsg("  Use numbers and ranges, e.g. 1 2 3 or 1-3")
}
