package navigator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vanderheijden86/notebook/pkg/notebook"
	"github.com/vanderheijden86/notebook/pkg/testutil"
	"github.com/vanderheijden86/notebook/pkg/translate"
)

// answer is one scripted reply to a prompt.
type answer struct {
	value string
	err   error
}

func pick(value string) answer { return answer{value: value} }
func typed(text string) answer { return answer{value: text} }
func fails(err error) answer   { return answer{err: err} }

// scriptedPrompter replies to prompts from a fixed script and records what
// it was asked.
type scriptedPrompter struct {
	answers []answer
	titles  []string
	edits   []string
	spins   int
	// detach runs spin actions in the background and returns only when ctx
	// is cancelled, like a spinner interrupted by Ctrl+C.
	detach bool
}

func (p *scriptedPrompter) next(kind, title string) (string, error) {
	p.titles = append(p.titles, title)
	if len(p.answers) == 0 {
		return "", fmt.Errorf("unexpected %s prompt %q: script exhausted", kind, title)
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a.value, a.err
}

func (p *scriptedPrompter) Select(_ context.Context, title string, options []Option) (string, error) {
	v, err := p.next("select", title)
	if err != nil {
		return "", err
	}
	if !slices.ContainsFunc(options, func(o Option) bool { return o.Value == v }) {
		return "", fmt.Errorf("answer %q is not an option of %q", v, title)
	}
	return v, nil
}

func (p *scriptedPrompter) Input(_ context.Context, title string) (string, error) {
	return p.next("input", title)
}

func (p *scriptedPrompter) Edit(_ context.Context, title, initial string) (string, error) {
	p.edits = append(p.edits, initial)
	return p.next("edit", title)
}

func (p *scriptedPrompter) Spin(ctx context.Context, _ string, action func()) error {
	p.spins++
	if p.detach {
		go action()
		<-ctx.Done()
		return ctx.Err()
	}
	action()
	return nil
}

// fakeTracker records change-tracker calls.
type fakeTracker struct {
	watched   []string
	unwatched []string
	expected  []string
	changed   bool
}

func (f *fakeTracker) Watch(dir string) error   { f.watched = append(f.watched, dir); return nil }
func (f *fakeTracker) Unwatch(dir string) error { f.unwatched = append(f.unwatched, dir); return nil }
func (f *fakeTracker) Expect(path string)       { f.expected = append(f.expected, path) }
func (f *fakeTracker) TakeChanged() bool {
	c := f.changed
	f.changed = false
	return c
}

type harness struct {
	root   string
	store  *notebook.Store
	prompt *scriptedPrompter
	out    bytes.Buffer
	errOut bytes.Buffer
	opts   Options
}

func newHarness(t *testing.T, tree testutil.Tree, answers ...answer) *harness {
	t.Helper()
	root := filepath.Join(t.TempDir(), "notebooks")
	testutil.Seed(t, root, tree)

	h := &harness{
		root:   root,
		store:  notebook.New(root),
		prompt: &scriptedPrompter{answers: answers},
	}
	h.opts = Options{
		Store:    h.store,
		Prompter: h.prompt,
		Out:      &h.out,
		Err:      &h.errOut,
	}
	return h
}

func (h *harness) run(t *testing.T) error {
	t.Helper()
	return h.runContext(t, context.Background())
}

func (h *harness) runContext(t *testing.T, ctx context.Context) error {
	t.Helper()
	err := New(h.opts).Run(ctx)
	if len(h.prompt.answers) != 0 {
		t.Errorf("%d scripted answers left unused", len(h.prompt.answers))
	}
	return err
}

func (h *harness) stdout() string { return testutil.StripANSI(h.out.String()) }
func (h *harness) stderr() string { return testutil.StripANSI(h.errOut.String()) }

func TestRun_EmptyBaseThenExit(t *testing.T) {
	h := newHarness(t, nil, pick(actionExit))
	require.NoError(t, h.run(t))

	out := h.stdout()
	assert.Contains(t, out, "Welcome to the NotebookCLI!")
	assert.Contains(t, out, "No notebooks available. Get started by creating a new notebook!")
	assert.Contains(t, out, "Goodbye!")
	testutil.AssertTree(t, h.root, testutil.Tree{})
}

func TestRun_CreateNotebookAndNote(t *testing.T) {
	h := newHarness(t, nil,
		pick(actionCreateNotebook), typed("Work"),
		pick(actionOpenNotebook), typed("Work"),
		pick(actionCreateNote), typed("todo"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	testutil.AssertTree(t, h.root, testutil.Tree{"Work": {"todo": ""}})

	titles, err := h.store.ListNotes("Work")
	require.NoError(t, err)
	assert.Equal(t, []string{"todo"}, titles)

	out := h.stdout()
	assert.Contains(t, out, `Notebook "Work" created!`)
	assert.Contains(t, out, "│  Work  │")
	assert.Contains(t, out, `Notebook "Work" opened!`)
	assert.Contains(t, out, `Notebook: "Work" Menu`)
	assert.Contains(t, out, "No notes available in this notebook. Create a new note to get started!")
	assert.Contains(t, out, `Note "todo" created!`)
	assert.Contains(t, out, `Your available notes in notebook "Work":`)
	assert.Contains(t, out, "1. todo")
	assert.Empty(t, h.stderr())

	want := []string{
		"What would you like to do?",
		"Please enter the new notebook name.",
		"What would you like to do?",
		"Please enter the notebook name.",
		"What would you like to do?",
		"Please enter the note title to create:",
		"What would you like to do?",
		"What would you like to do?",
	}
	if diff := cmp.Diff(want, h.prompt.titles); diff != "" {
		t.Errorf("prompt sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_ListsNotesInOrder(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": {"b": "", "a": "", "c": ""}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	out := h.stdout()
	assert.Contains(t, out, "1. a\n")
	assert.Contains(t, out, "2. b\n")
	assert.Contains(t, out, "3. c\n")
}

func TestRun_EditNote(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": {"todo": "buy milk"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("todo"),
		pick(actionEditNote), typed("buy bread"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	testutil.AssertNote(t, h.root, "Work", "todo", "buy bread")
	assert.Equal(t, []string{"buy milk"}, h.prompt.edits, "editor should be pre-filled")

	out := h.stdout()
	assert.Contains(t, out, `Current content of "todo":`)
	assert.Contains(t, out, "buy milk")
	assert.Contains(t, out, `Note "todo" updated.`)
}

func TestRun_TranslateNote(t *testing.T) {
	var gotText, gotTarget string
	h := newHarness(t, testutil.Tree{"Work": {"todo": "hello"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("todo"),
		pick(actionTranslateNote),
		pick(actionBack),
		pick(actionExit),
	)
	h.opts.Translator = translate.Func(func(_ context.Context, text, target string) (string, error) {
		gotText, gotTarget = text, target
		return "hola", nil
	})
	require.NoError(t, h.run(t))

	assert.Equal(t, "hello", gotText)
	assert.Equal(t, "es", gotTarget)
	assert.Equal(t, 1, h.prompt.spins)
	assert.Contains(t, h.stdout(), `Note "todo": hola`)
	testutil.AssertNote(t, h.root, "Work", "todo", "hello")
}

func TestRun_TranslateTargetLanguage(t *testing.T) {
	var gotTarget string
	h := newHarness(t, testutil.Tree{"Work": {"todo": "hello"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("todo"),
		pick(actionTranslateNote),
		pick(actionBack),
		pick(actionExit),
	)
	h.opts.TargetLanguage = "fr"
	h.opts.Translator = translate.Func(func(_ context.Context, _, target string) (string, error) {
		gotTarget = target
		return "bonjour", nil
	})
	require.NoError(t, h.run(t))
	assert.Equal(t, "fr", gotTarget)
}

func TestRun_TranslateFailureIsReported(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := newHarness(t, testutil.Tree{"Work": {"todo": "hello"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("todo"),
		pick(actionTranslateNote),
		pick(actionBack),
		pick(actionExit),
	)
	h.opts.Logger = zap.New(core)
	// No translator configured: credentials are missing.
	require.NoError(t, h.run(t))

	assert.Contains(t, h.stderr(), "Error translating note:")
	testutil.AssertNote(t, h.root, "Work", "todo", "hello")

	entries := logs.FilterMessage("operation failed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "translating note", fields["op"])
	assert.Equal(t, "Work", fields["notebook"])
	assert.Equal(t, "todo", fields["note"])
}

func TestRun_CancelDuringTranslate(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	finished := make(chan struct{})
	h := newHarness(t, testutil.Tree{"Work": {"todo": "hello"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("todo"),
		pick(actionTranslateNote),
	)
	h.prompt.detach = true
	h.opts.Translator = translate.Func(func(ctx context.Context, _, _ string) (string, error) {
		defer close(finished)
		cancel()
		<-ctx.Done()
		return "too late", nil
	})

	require.NoError(t, h.runContext(t, ctx))
	<-finished

	out := h.stdout()
	assert.Contains(t, out, "Goodbye!")
	assert.NotContains(t, out, "too late")
	assert.Empty(t, h.stderr())
	testutil.AssertNote(t, h.root, "Work", "todo", "hello")
}

func TestRun_ReturnWithoutChanges(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": {"todo": "buy milk"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("todo"),
		pick(actionReturn),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	assert.Contains(t, h.stdout(), "No changes made to the note.")
	testutil.AssertNote(t, h.root, "Work", "todo", "buy milk")
}

func TestRun_DeleteNote(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": {"todo": "x", "keep": "y"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionDeleteNote), typed("todo"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	assert.Contains(t, h.stdout(), `Note "todo" deleted successfully!`)
	testutil.AssertTree(t, h.root, testutil.Tree{"Work": {"keep": "y"}})
}

func TestRun_Conflicts(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": {"todo": "buy milk"}},
		pick(actionCreateNotebook), typed("Work"),
		pick(actionOpenNotebook), typed("Work"),
		pick(actionCreateNote), typed("todo"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	out := h.stdout()
	assert.Contains(t, out, `Notebook "Work" already exists.`)
	assert.Contains(t, out, `Note "todo" already exists.`)
	testutil.AssertTree(t, h.root, testutil.Tree{"Work": {"todo": "buy milk"}})
}

func TestRun_NotFound(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": nil},
		pick(actionOpenNotebook), typed("Nope"),
		pick(actionOpenNotebook), typed("Work"),
		pick(actionViewNote), typed("ghost"),
		pick(actionDeleteNote), typed("ghost"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	out := h.stdout()
	assert.Contains(t, out, `Notebook "Nope" does not exist.`)
	assert.Contains(t, out, `Note "ghost" does not exist.`)
	assert.NotContains(t, out, `Notebook "Nope" opened!`)
	testutil.AssertTree(t, h.root, testutil.Tree{"Work": nil})
}

func TestRun_InvalidNamesAreRejected(t *testing.T) {
	h := newHarness(t, testutil.Tree{"Work": nil},
		pick(actionCreateNotebook), typed("../evil"),
		pick(actionCreateNotebook), typed("   "),
		pick(actionOpenNotebook), typed("Work"),
		pick(actionCreateNote), typed("a/b"),
		pick(actionBack),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))

	out := h.stdout()
	assert.Contains(t, out, `Cannot use "../evil"`)
	assert.Contains(t, out, `Cannot use ""`)
	assert.Contains(t, out, `Cannot use "a/b"`)
	testutil.AssertTree(t, h.root, testutil.Tree{"Work": nil})
	testutil.AssertTree(t, filepath.Dir(h.root), testutil.Tree{"notebooks": nil})
}

func TestRun_InputIsTrimmed(t *testing.T) {
	h := newHarness(t, nil,
		pick(actionCreateNotebook), typed("  Work  "),
		pick(actionExit),
	)
	require.NoError(t, h.run(t))
	testutil.AssertTree(t, h.root, testutil.Tree{"Work": nil})
}

// failingStore wraps a real store and fails note creation.
type failingStore struct {
	*notebook.Store
	err error
}

func (s failingStore) CreateNote(string, string) error { return s.err }

func TestRun_StoreFailureIsReportedAndLogged(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	h := newHarness(t, testutil.Tree{"Work": nil},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionCreateNote), typed("todo"),
		pick(actionBack),
		pick(actionExit),
	)
	h.opts.Store = failingStore{Store: h.store, err: errors.New("disk full")}
	h.opts.Logger = zap.New(core)
	require.NoError(t, h.run(t))

	assert.Contains(t, h.stderr(), "Error creating note: disk full")
	assert.NotContains(t, h.stdout(), `Note "todo" created!`)

	entries := logs.FilterMessage("operation failed").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "creating note", entries[0].ContextMap()["op"])
	assert.Equal(t, "disk full", entries[0].ContextMap()["error"])
}

func TestRun_AbortExits(t *testing.T) {
	tests := []struct {
		name    string
		answers []answer
	}{
		{"at root menu", []answer{fails(ErrAborted)}},
		{"while naming a notebook", []answer{pick(actionCreateNotebook), fails(ErrAborted)}},
		{"inside a notebook", []answer{pick(actionOpenNotebook), typed("Work"), fails(ErrAborted)}},
		{"while editing", []answer{
			pick(actionOpenNotebook), typed("Work"),
			pick(actionViewNote), typed("todo"),
			pick(actionEditNote), fails(ErrAborted),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, testutil.Tree{"Work": {"todo": "buy milk"}}, tt.answers...)
			require.NoError(t, h.run(t))
			assert.Contains(t, h.stdout(), "Goodbye!")
			testutil.AssertNote(t, h.root, "Work", "todo", "buy milk")
		})
	}
}

func TestRun_PromptFailureIsReturned(t *testing.T) {
	boom := errors.New("terminal went away")
	h := newHarness(t, nil, fails(boom))

	err := h.run(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.NotContains(t, h.stdout(), "Goodbye!")
}

func TestRun_CancelledContextExits(t *testing.T) {
	h := newHarness(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, h.runContext(t, ctx))
	assert.Empty(t, h.prompt.titles)
	assert.Contains(t, h.stdout(), "Goodbye!")
}

func TestRun_ChangeTracking(t *testing.T) {
	tracker := &fakeTracker{changed: true}
	h := newHarness(t, testutil.Tree{"Work": {"todo": "x"}},
		pick(actionOpenNotebook), typed("Work"),
		pick(actionCreateNote), typed("new"),
		pick(actionDeleteNote), typed("todo"),
		pick(actionBack),
		pick(actionExit),
	)
	h.opts.Changes = tracker
	require.NoError(t, h.run(t))

	workDir := filepath.Join(h.root, "Work")
	assert.Contains(t, h.stdout(), "Changes detected on disk; listing refreshed.")
	assert.Contains(t, tracker.watched, h.root)
	assert.Contains(t, tracker.watched, workDir)
	assert.Equal(t, []string{workDir}, tracker.unwatched)
	assert.Equal(t, []string{
		filepath.Join(workDir, "new.txt"),
		filepath.Join(workDir, "todo.txt"),
	}, tracker.expected)
}

func TestRun_Pacing(t *testing.T) {
	var slept []time.Duration
	h := newHarness(t, nil,
		pick(actionCreateNotebook), typed("Work"),
		pick(actionExit),
	)
	h.opts.Pace = time.Second
	h.opts.Sleep = func(d time.Duration) { slept = append(slept, d) }
	require.NoError(t, h.run(t))

	require.NotEmpty(t, slept)
	for _, d := range slept {
		assert.Equal(t, time.Second, d)
	}

	// Zero pace never sleeps.
	slept = nil
	h2 := newHarness(t, nil, pick(actionExit))
	h2.opts.Sleep = func(d time.Duration) { slept = append(slept, d) }
	require.NoError(t, h2.run(t))
	assert.Empty(t, slept)
}

func TestState(t *testing.T) {
	assert.Equal(t, State{Kind: KindNotebook, Notebook: "Work"}, InNotebook("Work"))
	assert.Equal(t, "root", Root().Kind.String())
	assert.Equal(t, "notebook", KindNotebook.String())
	assert.Equal(t, "exit", Exit().Kind.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
