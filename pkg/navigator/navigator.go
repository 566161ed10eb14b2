// Package navigator drives the interactive notebook menus.
//
// The navigator is a loop over a State value. Each iteration renders the
// current menu, asks the Prompter for a choice and runs the matching flow
// from a dispatch table. Flows return the next state, which is always the
// menu they were started from unless the user opened a notebook, went back
// or exited. Filesystem and translation failures are reported and logged
// inside the flow and never leave it.
package navigator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/vanderheijden86/notebook/pkg/debug"
	"github.com/vanderheijden86/notebook/pkg/translate"
	"github.com/vanderheijden86/notebook/pkg/ui"
)

// Store is the notebook storage the navigator works on.
type Store interface {
	Root() string
	NotebookPath(name string) (string, error)
	NotePath(notebook, title string) (string, error)

	ListNotebooks() ([]string, error)
	NotebookExists(name string) bool
	CreateNotebook(name string) error

	ListNotes(notebook string) ([]string, error)
	NoteExists(notebook, title string) bool
	CreateNote(notebook, title string) error
	ReadNote(notebook, title string) (string, error)
	WriteNote(notebook, title, content string) error
	DeleteNote(notebook, title string) error
}

// ChangeTracker reports changes made to the store by other programs.
type ChangeTracker interface {
	Watch(dir string) error
	Unwatch(dir string) error
	Expect(path string)
	TakeChanged() bool
}

// Options configures a Navigator. Store and Prompter are required.
type Options struct {
	Store      Store
	Prompter   Prompter
	Translator translate.Translator
	Renderer   *ui.NoteRenderer
	Changes    ChangeTracker
	Logger     *zap.Logger

	Out io.Writer // menus and confirmations; defaults to stdout
	Err io.Writer // error reports; defaults to stderr

	TargetLanguage string        // defaults to "es"
	Pace           time.Duration // pause after each flow
	Sleep          func(time.Duration)
}

type handler func(ctx context.Context, st State) (State, error)

// Navigator runs the menu loop.
type Navigator struct {
	store      Store
	prompt     Prompter
	translator translate.Translator
	renderer   *ui.NoteRenderer
	changes    ChangeTracker
	logger     *zap.Logger
	out        io.Writer
	errOut     io.Writer
	target     string
	pace       time.Duration
	sleep      func(time.Duration)

	menus       map[Kind]handler
	rootActions map[string]handler
	noteActions map[string]handler
}

// New creates a navigator.
func New(opts Options) *Navigator {
	n := &Navigator{
		store:      opts.Store,
		prompt:     opts.Prompter,
		translator: opts.Translator,
		renderer:   opts.Renderer,
		changes:    opts.Changes,
		logger:     opts.Logger,
		out:        opts.Out,
		errOut:     opts.Err,
		target:     opts.TargetLanguage,
		pace:       opts.Pace,
		sleep:      opts.Sleep,
	}
	if n.translator == nil {
		n.translator = translate.Func(func(context.Context, string, string) (string, error) {
			return "", translate.ErrNoCredentials
		})
	}
	if n.renderer == nil {
		n.renderer = ui.NewNoteRenderer(false, 0)
	}
	if n.logger == nil {
		n.logger = zap.NewNop()
	}
	if n.out == nil {
		n.out = os.Stdout
	}
	if n.errOut == nil {
		n.errOut = os.Stderr
	}
	if n.target == "" {
		n.target = "es"
	}
	if n.sleep == nil {
		n.sleep = time.Sleep
	}

	n.menus = map[Kind]handler{
		KindRoot:     n.showRoot,
		KindNotebook: n.showNotebookMenu,
	}
	n.rootActions = map[string]handler{
		actionCreateNotebook: n.createNotebookFlow,
		actionOpenNotebook:   n.openNotebookFlow,
		actionExit:           func(context.Context, State) (State, error) { return Exit(), nil },
	}
	n.noteActions = map[string]handler{
		actionCreateNote: n.createNoteFlow,
		actionViewNote:   n.viewEditFlow,
		actionDeleteNote: n.deleteNoteFlow,
		actionBack:       n.backFlow,
	}
	return n
}

// Run prints the banner and drives the menus until the user exits. It
// returns nil on Exit, on a cancelled prompt and once ctx is cancelled. Any
// other prompt failure is returned.
func (n *Navigator) Run(ctx context.Context) error {
	defer debug.LogEnterExit("navigator.Run")()

	n.say(ui.Banner())
	n.pause()

	st := Root()
	for st.Kind != KindExit {
		if ctx.Err() != nil {
			break
		}
		next, err := n.step(ctx, st)
		if err != nil {
			if errors.Is(err, ErrAborted) || ctx.Err() != nil {
				break
			}
			n.logger.Error("prompt failed", zap.Stringer("state", st.Kind), zap.Error(err))
			return fmt.Errorf("prompt: %w", err)
		}
		debug.Log("navigator: %s -> %s", st.Kind, next.Kind)
		st = next
	}

	n.exit()
	return nil
}

func (n *Navigator) step(ctx context.Context, st State) (State, error) {
	menu, ok := n.menus[st.Kind]
	if !ok {
		return Root(), nil
	}
	return menu(ctx, st)
}

// dispatch runs the handler registered for choice, or stays in st.
func dispatch(ctx context.Context, table map[string]handler, choice string, st State) (State, error) {
	h, ok := table[choice]
	if !ok {
		return st, nil
	}
	return h(ctx, st)
}

func (n *Navigator) exit() {
	n.say(ui.Error("Goodbye!"))
}

// say writes one line to the menu output.
func (n *Navigator) say(s string) {
	fmt.Fprintln(n.out, s)
}

func (n *Navigator) blank() {
	fmt.Fprint(n.out, "\n\n")
}

func (n *Navigator) pause() {
	if n.pace > 0 {
		n.sleep(n.pace)
	}
}

// fail reports an operation failure to the user and the log.
func (n *Navigator) fail(op, notebook, note string, err error) {
	fmt.Fprintln(n.errOut, ui.Error(fmt.Sprintf("Error %s: %v", op, err)))
	n.logger.Error("operation failed",
		zap.String("op", op),
		zap.String("notebook", notebook),
		zap.String("note", note),
		zap.Error(err),
	)
}

// expect tells the change tracker that nb is about to modify path.
func (n *Navigator) expect(path string, err error) {
	if n.changes == nil || err != nil {
		return
	}
	n.changes.Expect(path)
}

func (n *Navigator) watch(dir string, err error) {
	if n.changes == nil || err != nil {
		return
	}
	if werr := n.changes.Watch(dir); werr != nil {
		debug.Log("watch %s: %v", dir, werr)
	}
}

func (n *Navigator) unwatch(dir string, err error) {
	if n.changes == nil || err != nil {
		return
	}
	if werr := n.changes.Unwatch(dir); werr != nil {
		debug.Log("unwatch %s: %v", dir, werr)
	}
}

// noticeChanges prints a notice when the tracker saw outside changes since
// the previous listing.
func (n *Navigator) noticeChanges() {
	if n.changes != nil && n.changes.TakeChanged() {
		n.say(ui.Info("Changes detected on disk; listing refreshed."))
	}
}
