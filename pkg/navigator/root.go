package navigator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vanderheijden86/notebook/pkg/notebook"
	"github.com/vanderheijden86/notebook/pkg/ui"
)

func (n *Navigator) showRoot(ctx context.Context, st State) (State, error) {
	n.watch(n.store.Root(), nil)
	n.noticeChanges()

	notebooks, err := n.store.ListNotebooks()
	switch {
	case err != nil:
		n.fail("listing notebooks", "", "", err)
	case len(notebooks) == 0:
		n.say(ui.Warning("No notebooks available. Get started by creating a new notebook!"))
	default:
		n.say(ui.Info("Your notebooks: "))
		for _, name := range notebooks {
			n.say(ui.RenderNotebookBox(name))
		}
	}
	n.say("")
	n.pause()

	choice, err := n.prompt.Select(ctx, "What would you like to do?", rootOptions)
	if err != nil {
		return st, err
	}
	return dispatch(ctx, n.rootActions, choice, Root())
}

func (n *Navigator) createNotebookFlow(ctx context.Context, _ State) (State, error) {
	input, err := n.prompt.Input(ctx, "Please enter the new notebook name.")
	if err != nil {
		return Root(), err
	}
	name := strings.TrimSpace(input)

	switch {
	case n.rejectName(name, notebook.ValidateName):
	case n.store.NotebookExists(name):
		n.say(ui.Warning(fmt.Sprintf("Notebook %q already exists.", name)))
	default:
		n.expect(n.store.NotebookPath(name))
		if err := n.store.CreateNotebook(name); err != nil {
			if errors.Is(err, notebook.ErrExists) {
				n.say(ui.Warning(fmt.Sprintf("Notebook %q already exists.", name)))
			} else {
				n.fail("creating notebook", name, "", err)
			}
		} else {
			n.say(ui.Success(fmt.Sprintf("Notebook %q created!", name)))
		}
	}

	n.blank()
	return Root(), nil
}

func (n *Navigator) openNotebookFlow(ctx context.Context, _ State) (State, error) {
	input, err := n.prompt.Input(ctx, "Please enter the notebook name.")
	if err != nil {
		return Root(), err
	}
	name := strings.TrimSpace(input)

	if n.rejectName(name, notebook.ValidateName) {
		n.blank()
		return Root(), nil
	}
	if !n.store.NotebookExists(name) {
		n.say(ui.Error(fmt.Sprintf("Notebook %q does not exist.", name)))
		n.blank()
		return Root(), nil
	}

	n.say(ui.Warning(fmt.Sprintf("Notebook %q opened!", name)))
	n.say("")
	return InNotebook(name), nil
}

// rejectName reports an invalid notebook name or note title to the user.
func (n *Navigator) rejectName(name string, validate func(string) error) bool {
	if err := validate(name); err != nil {
		n.say(ui.Error(fmt.Sprintf("Cannot use %q: %v", name, err)))
		return true
	}
	return false
}
