package navigator

// Kind identifies a menu state.
type Kind int

const (
	KindRoot Kind = iota
	KindNotebook
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindRoot:
		return "root"
	case KindNotebook:
		return "notebook"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// State is the current menu plus its context.
type State struct {
	Kind     Kind
	Notebook string // set for KindNotebook
}

// Root is the main menu.
func Root() State { return State{Kind: KindRoot} }

// InNotebook is the menu of the named notebook.
func InNotebook(name string) State { return State{Kind: KindNotebook, Notebook: name} }

// Exit ends the navigation loop.
func Exit() State { return State{Kind: KindExit} }

// Menu action values.
const (
	actionCreateNotebook = "createNotebook"
	actionOpenNotebook   = "openNotebook"
	actionExit           = "exit"

	actionCreateNote = "createNote"
	actionViewNote   = "viewNote"
	actionDeleteNote = "deleteNote"
	actionBack       = "back"

	actionEditNote      = "editNote"
	actionTranslateNote = "translateNote"
	actionReturn        = "return"
)

var rootOptions = []Option{
	{Label: "Create a new notebook", Value: actionCreateNotebook},
	{Label: "Open an existing notebook", Value: actionOpenNotebook},
	{Label: "Exit", Value: actionExit},
}

var notebookOptions = []Option{
	{Label: "Create a new note", Value: actionCreateNote},
	{Label: "View and edit a note", Value: actionViewNote},
	{Label: "Delete a note", Value: actionDeleteNote},
	{Label: "Back to main menu", Value: actionBack},
}

var noteOptions = []Option{
	{Label: "Edit this note", Value: actionEditNote},
	{Label: "Translate this note", Value: actionTranslateNote},
	{Label: "Back to your notebook menu", Value: actionReturn},
}
