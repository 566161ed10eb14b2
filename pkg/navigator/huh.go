package navigator

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"golang.org/x/term"
)

// editorLines is the visible height of the edit prompt.
const editorLines = 12

// formShutdownGrace bounds how long a cancelled prompt waits for the form to
// restore the terminal before returning.
const formShutdownGrace = 250 * time.Millisecond

// HuhOption configures a HuhPrompter.
type HuhOption func(*HuhPrompter)

// WithAccessible forces plain-text prompts.
func WithAccessible(on bool) HuhOption {
	return func(p *HuhPrompter) {
		p.accessible = on
	}
}

// WithEditor sets the external editor opened with ctrl+e in the edit prompt.
func WithEditor(editor string) HuhOption {
	return func(p *HuhPrompter) {
		p.editor = editor
	}
}

// WithIO redirects prompt input and output.
func WithIO(in io.Reader, out io.Writer) HuhOption {
	return func(p *HuhPrompter) {
		p.in = in
		p.out = out
	}
}

// HuhPrompter implements Prompter with charmbracelet/huh forms.
type HuhPrompter struct {
	accessible bool
	editor     string
	in         io.Reader
	out        io.Writer
}

// NewHuhPrompter creates a prompter. When stdin is not a terminal the forms
// fall back to accessible mode so piped input still works.
func NewHuhPrompter(opts ...HuhOption) *HuhPrompter {
	p := &HuhPrompter{}
	for _, opt := range opts {
		opt(p)
	}
	if !isTerminal() {
		p.accessible = true
	}
	return p
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with the prompter's theme and IO settings.
func (p *HuhPrompter) newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).
		WithTheme(huh.ThemeDracula()).
		WithAccessible(p.accessible)
	if p.in != nil {
		form = form.WithInput(p.in)
	}
	if p.out != nil {
		form = form.WithOutput(p.out)
	}
	return form
}

// runForm runs form until it completes or ctx is cancelled. Accessible forms
// block on a plain read and ignore ctx, so the form runs in its own goroutine
// and a cancelled prompt returns ctx.Err() without waiting for input.
func runForm(ctx context.Context, form *huh.Form) error {
	done := make(chan error, 1)
	go func() {
		done <- form.RunWithContext(ctx)
	}()

	select {
	case err := <-done:
		return promptErr(err)
	case <-ctx.Done():
		select {
		case <-done:
		case <-time.After(formShutdownGrace):
		}
		return ctx.Err()
	}
}

// promptErr maps huh errors onto the Prompter contract.
func promptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}

// Select implements Prompter.
func (p *HuhPrompter) Select(ctx context.Context, title string, options []Option) (string, error) {
	opts := make([]huh.Option[string], len(options))
	for i, o := range options {
		opts[i] = huh.NewOption(o.Label, o.Value)
	}

	var value string
	form := p.newForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(opts...).
				Value(&value),
		),
	)
	if err := runForm(ctx, form); err != nil {
		return "", err
	}
	return value, nil
}

// Input implements Prompter.
func (p *HuhPrompter) Input(ctx context.Context, title string) (string, error) {
	var value string
	form := p.newForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Value(&value),
		),
	)
	if err := runForm(ctx, form); err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// Edit implements Prompter.
func (p *HuhPrompter) Edit(ctx context.Context, title, initial string) (string, error) {
	value := initial
	text := huh.NewText().
		Title(title).
		Description("ctrl+e opens your editor").
		Lines(editorLines).
		EditorExtension("txt").
		Value(&value)
	if p.editor != "" {
		text = text.Editor(p.editor)
	}

	if err := runForm(ctx, p.newForm(huh.NewGroup(text))); err != nil {
		return "", err
	}
	return value, nil
}

// Spin implements Prompter.
func (p *HuhPrompter) Spin(ctx context.Context, title string, action func()) error {
	s := spinner.New().
		Title(title).
		Context(ctx).
		Accessible(p.accessible).
		Action(action)
	if p.out != nil {
		s = s.Output(p.out)
	}
	return promptErr(s.Run())
}
