package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vanderheijden86/notebook/pkg/testutil"
)

func TestRenderNotebookBox_Shape(t *testing.T) {
	out := RenderNotebookBox("Work")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "Work") {
		t.Errorf("name not on middle line: %q", lines[2])
	}
	want := lipgloss.Width(lines[0])
	if want != len("Work")+2*boxPadding+2 {
		t.Errorf("unexpected box width %d", want)
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != want {
			t.Errorf("line %d width %d, want %d: %q", i, w, want, line)
		}
	}
}

func TestRenderNotebookBox_Golden(t *testing.T) {
	testutil.NewGoldenFile(t, "testdata", "notebook_box.golden").Assert(RenderNotebookBox("Work") + "\n")
}

func TestRenderNotebookBox_WideRunes(t *testing.T) {
	out := RenderNotebookBox("日記")
	lines := strings.Split(out, "\n")
	// Two wide runes occupy four cells.
	if w := lipgloss.Width(lines[0]); w != 4+2*boxPadding+2 {
		t.Errorf("unexpected width %d for wide name", w)
	}
	if lipgloss.Width(lines[2]) != lipgloss.Width(lines[0]) {
		t.Errorf("middle line misaligned:\n%s", out)
	}
}

func TestBanner(t *testing.T) {
	out := Banner()
	if !strings.Contains(out, "Welcome to the NotebookCLI!") {
		t.Errorf("banner missing welcome line:\n%s", out)
	}
	if strings.Count(out, "\n") != len(bannerArt)+2 {
		t.Errorf("unexpected banner line count:\n%s", out)
	}
}

func TestNoteRenderer_Plain(t *testing.T) {
	r := NewNoteRenderer(false, 0)
	out := r.Render("buy milk\nbuy eggs")
	if !strings.Contains(out, "buy milk") || !strings.Contains(out, "buy eggs") {
		t.Errorf("plain render lost content: %q", out)
	}
	if strings.Contains(out, "buy milk ") {
		t.Errorf("plain render padded lines: %q", out)
	}
}

func TestNoteRenderer_Markdown(t *testing.T) {
	r := NewNoteRenderer(true, 40)
	out := r.Render("# Title\n\nsome *text*")
	if !strings.Contains(out, "Title") || !strings.Contains(out, "text") {
		t.Errorf("markdown render lost content: %q", out)
	}
}

func TestNoteRenderer_Nil(t *testing.T) {
	var r *NoteRenderer
	if got := r.Render("x"); !strings.Contains(got, "x") {
		t.Errorf("nil renderer should fall back to plain text, got %q", got)
	}
}
