package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vanderheijden86/notebook/pkg/debug"
	"github.com/vanderheijden86/notebook/pkg/notebook"
	"github.com/vanderheijden86/notebook/pkg/ui"
)

func (n *Navigator) showNotebookMenu(ctx context.Context, st State) (State, error) {
	n.watch(n.store.NotebookPath(st.Notebook))

	n.say(ui.Heading(fmt.Sprintf("Notebook: %q Menu", st.Notebook)))
	n.noticeChanges()

	titles, err := n.store.ListNotes(st.Notebook)
	switch {
	case errors.Is(err, notebook.ErrNotFound):
		// Removed by another program while open.
		n.say(ui.Error(fmt.Sprintf("Notebook %q does not exist.", st.Notebook)))
		n.blank()
		return n.backFlow(ctx, st)
	case err != nil:
		n.fail("listing notes", st.Notebook, "", err)
	case len(titles) == 0:
		n.say(ui.Warning("No notes available in this notebook. Create a new note to get started!"))
	default:
		n.say(ui.Info(fmt.Sprintf("Your available notes in notebook %q:", st.Notebook)))
		for i, title := range titles {
			n.say(ui.ListStyle.Render(fmt.Sprintf("%d. %s", i+1, title)))
		}
	}
	n.say("")

	choice, err := n.prompt.Select(ctx, "What would you like to do?", notebookOptions)
	if err != nil {
		return st, err
	}
	return dispatch(ctx, n.noteActions, choice, st)
}

func (n *Navigator) backFlow(_ context.Context, st State) (State, error) {
	n.unwatch(n.store.NotebookPath(st.Notebook))
	return Root(), nil
}

// promptTitle asks for a note title and validates it. ok is false when the
// title was rejected and the flow should return.
func (n *Navigator) promptTitle(ctx context.Context, question string) (title string, ok bool, err error) {
	input, err := n.prompt.Input(ctx, question)
	if err != nil {
		return "", false, err
	}
	title = strings.TrimSpace(input)
	if n.rejectName(title, notebook.ValidateTitle) {
		return title, false, nil
	}
	return title, true, nil
}

// done finishes a notebook-menu flow.
func (n *Navigator) done(st State) (State, error) {
	n.pause()
	n.blank()
	return st, nil
}

func (n *Navigator) createNoteFlow(ctx context.Context, st State) (State, error) {
	title, ok, err := n.promptTitle(ctx, "Please enter the note title to create:")
	if err != nil {
		return st, err
	}
	if !ok {
		return n.done(st)
	}

	if n.store.NoteExists(st.Notebook, title) {
		n.say(ui.Warning(fmt.Sprintf("Note %q already exists.", title)))
		return n.done(st)
	}

	n.expect(n.store.NotePath(st.Notebook, title))
	switch err := n.store.CreateNote(st.Notebook, title); {
	case err == nil:
		n.say(ui.Success(fmt.Sprintf("Note %q created!", title)))
	case errors.Is(err, notebook.ErrExists):
		n.say(ui.Warning(fmt.Sprintf("Note %q already exists.", title)))
	default:
		n.fail("creating note", st.Notebook, title, err)
	}
	return n.done(st)
}

func (n *Navigator) viewEditFlow(ctx context.Context, st State) (State, error) {
	title, ok, err := n.promptTitle(ctx, "Please enter the note title to view and edit:")
	if err != nil {
		return st, err
	}
	if !ok {
		return n.done(st)
	}

	if !n.store.NoteExists(st.Notebook, title) {
		n.say(ui.Error(fmt.Sprintf("Note %q does not exist.", title)))
		return n.done(st)
	}

	content, err := n.store.ReadNote(st.Notebook, title)
	if err != nil {
		n.fail("reading note", st.Notebook, title, err)
		return n.done(st)
	}

	n.say(ui.Info(fmt.Sprintf("Current content of %q:", title)))
	n.say(n.renderer.Render(content))
	n.pause()

	action, err := n.prompt.Select(ctx, "What would you like to do?", noteOptions)
	if err != nil {
		return st, err
	}

	switch action {
	case actionEditNote:
		edited, err := n.prompt.Edit(ctx, "Edit the note content.", content)
		if err != nil {
			return st, err
		}
		n.expect(n.store.NotePath(st.Notebook, title))
		if err := n.store.WriteNote(st.Notebook, title, edited); err != nil {
			n.fail("updating note", st.Notebook, title, err)
		} else {
			n.say(ui.Warning(fmt.Sprintf("Note %q updated.", title)))
		}
	case actionTranslateNote:
		if err := n.translateNote(ctx, st.Notebook, title, content); err != nil {
			return st, err
		}
	default:
		n.say(ui.Warning("No changes made to the note."))
	}
	return n.done(st)
}

// translateNote shows a translation of content. The note itself is left
// untouched. The returned error is a prompt failure or ctx cancellation.
func (n *Navigator) translateNote(ctx context.Context, notebookName, title, content string) error {
	type translation struct {
		text string
		err  error
	}
	results := make(chan translation, 1)
	err := n.prompt.Spin(ctx, "Translating...", func() {
		text, err := n.translator.Translate(ctx, content, n.target)
		results <- translation{text: text, err: err}
	})
	if err != nil {
		return err
	}

	var res translation
	select {
	case res = <-results:
	case <-ctx.Done():
		return ctx.Err()
	}
	if res.err != nil {
		n.fail("translating note", notebookName, title, res.err)
		return nil
	}

	debug.Log("translated %q into %s", title, n.target)
	n.say(ui.Warning(fmt.Sprintf("Note %q: %s", title, res.text)))
	return nil
}

func (n *Navigator) deleteNoteFlow(ctx context.Context, st State) (State, error) {
	title, ok, err := n.promptTitle(ctx, "Please enter the note title to delete:")
	if err != nil {
		return st, err
	}
	if !ok {
		return n.done(st)
	}

	if !n.store.NoteExists(st.Notebook, title) {
		n.say(ui.Error(fmt.Sprintf("Note %q does not exist.", title)))
		return n.done(st)
	}

	n.expect(n.store.NotePath(st.Notebook, title))
	switch err := n.store.DeleteNote(st.Notebook, title); {
	case err == nil:
		n.say(ui.Warning(fmt.Sprintf("Note %q deleted successfully!", title)))
	case errors.Is(err, notebook.ErrNotFound):
		n.say(ui.Error(fmt.Sprintf("Note %q does not exist.", title)))
	default:
		n.fail("deleting note", st.Notebook, title, err)
	}
	return n.done(st)
}
