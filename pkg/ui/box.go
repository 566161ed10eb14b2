package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// boxPadding is the blank space on each side of the name.
const boxPadding = 2

// RenderNotebookBox draws a bordered box around a notebook name:
//
//	┌────────┐
//	│        │
//	│  Work  │
//	│        │
//	└────────┘
//
// Width follows the display width of the name, so wide runes line up.
func RenderNotebookBox(name string) string {
	inner := runewidth.StringWidth(name) + 2*boxPadding
	pad := strings.Repeat(" ", boxPadding)
	bar := boxBorderStyle.Render("│")

	var b strings.Builder
	b.WriteString(boxBorderStyle.Render("┌" + strings.Repeat("─", inner) + "┐"))
	b.WriteByte('\n')
	b.WriteString(bar + strings.Repeat(" ", inner) + bar)
	b.WriteByte('\n')
	b.WriteString(bar + pad + boxNameStyle.Render(name) + pad + bar)
	b.WriteByte('\n')
	b.WriteString(bar + strings.Repeat(" ", inner) + bar)
	b.WriteByte('\n')
	b.WriteString(boxBorderStyle.Render("└" + strings.Repeat("─", inner) + "┘"))
	return b.String()
}
