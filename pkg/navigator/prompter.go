package navigator

import (
	"context"
	"errors"
)

// ErrAborted is returned by a Prompter when the user cancels a prompt
// (Ctrl+C). The navigator treats it like choosing Exit.
//
// Prompts also return ctx.Err() once ctx is cancelled, even while waiting for
// input.
var ErrAborted = errors.New("prompt aborted")

// Option is one entry of a selection prompt.
type Option struct {
	Label string
	Value string
}

// Prompter is the interactive surface the navigator drives. Each call blocks
// until the user answers.
type Prompter interface {
	// Select asks the user to pick one option and returns its Value.
	Select(ctx context.Context, title string, options []Option) (string, error)
	// Input asks for a single line of text.
	Input(ctx context.Context, title string) (string, error)
	// Edit opens a multi-line editor pre-filled with initial and returns
	// what the user submitted.
	Edit(ctx context.Context, title, initial string) (string, error)
	// Spin shows a progress indicator while action runs. It returns once
	// action has finished, or early with ctx.Err() when ctx is cancelled.
	Spin(ctx context.Context, title string, action func()) error
}
