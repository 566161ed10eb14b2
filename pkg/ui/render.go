package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/vanderheijden86/notebook/pkg/debug"
)

// NoteRenderer formats note content for display.
type NoteRenderer struct {
	md *glamour.TermRenderer
}

// NewNoteRenderer returns a renderer. With markdown enabled, content is
// rendered through glamour; otherwise it is shown verbatim in the content
// colour.
func NewNoteRenderer(markdown bool, wordWrap int) *NoteRenderer {
	r := &NoteRenderer{}
	if !markdown {
		return r
	}
	if wordWrap <= 0 {
		wordWrap = 80
	}
	md, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		debug.Log("glamour renderer unavailable: %v", err)
		return r
	}
	r.md = md
	return r
}

// Render returns the display form of content.
func (r *NoteRenderer) Render(content string) string {
	if r != nil && r.md != nil {
		out, err := r.md.Render(content)
		if err == nil {
			return strings.TrimRight(out, "\n")
		}
		debug.Log("markdown render failed, showing plain text: %v", err)
	}
	return renderLines(ContentStyle, content)
}
