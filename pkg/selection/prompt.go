package selection

import (
	"context"
	"errors"
	"io"
)

// LineReader reads one line of user input after showing label.
// Implementations return io.EOF or ErrCancelled when no input will follow.
type LineReader interface {
	ReadLine(label string) (string, error)
}

// PromptOptions controls the prompt loop.
type PromptOptions struct {
	// Label is shown before each read.
	Label string

	// Retry re-prompts after an invalid selection instead of failing.
	Retry bool

	// OnInvalid is called with the parse error before re-prompting.
	OnInvalid func(err error)
}

// Prompt reads selection expressions from r until one parses.
//
// End of input, interrupt and context cancellation all return ErrCancelled.
// Without opts.Retry the first invalid selection is returned as is.
func Prompt(ctx context.Context, r LineReader, opts PromptOptions) ([]int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, ErrCancelled
		}

		line, err := r.ReadLine(opts.Label)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, ErrCancelled) {
				return nil, ErrCancelled
			}
			return nil, err
		}

		if ctx.Err() != nil {
			return nil, ErrCancelled
		}

		indices, err := Parse(line)
		if err == nil {
			return indices, nil
		}

		if !opts.Retry {
			return nil, err
		}
		if opts.OnInvalid != nil {
			opts.OnInvalid(err)
		}
	}
}
