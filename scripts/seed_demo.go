//go:build ignore

// seed_demo.go creates a small notebooks directory for trying nb by hand.
// Usage: go run scripts/seed_demo.go [dir]
//
// Then run: nb --dir <dir>
//
// Creates (default dir tmp/demo-notebooks):
//
//	Work/todo.txt, Work/standup.txt
//	Personal/groceries.txt, Personal/ideas.txt
//	Spanish/ (empty)
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vanderheijden86/notebook/pkg/notebook"
)

type demoNote struct {
	title   string
	content string
}

var demo = []struct {
	name  string
	notes []demoNote
}{
	{"Work", []demoNote{
		{"todo", "review pull requests\nupdate the release notes\n"},
		{"standup", "# Standup\n\n- yesterday: store tests\n- today: translator\n"},
	}},
	{"Personal", []demoNote{
		{"groceries", "buy milk\nbuy bread\n"},
		{"ideas", "learn to play the guitar\n"},
	}},
	{"Spanish", nil},
}

func main() {
	dir := "tmp/demo-notebooks"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	store := notebook.New(dir)
	if err := store.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create %s: %v\n", dir, err)
		os.Exit(1)
	}

	for _, nb := range demo {
		if err := store.CreateNotebook(nb.name); err != nil && !errors.Is(err, notebook.ErrExists) {
			fmt.Fprintf(os.Stderr, "Failed to create notebook %s: %v\n", nb.name, err)
			os.Exit(1)
		}
		for _, n := range nb.notes {
			if err := store.WriteNote(nb.name, n.title, n.content); err != nil {
				fmt.Fprintf(os.Stderr, "Failed to write %s/%s: %v\n", nb.name, n.title, err)
				os.Exit(1)
			}
		}
		fmt.Printf("  %s (%d notes)\n", nb.name, len(nb.notes))
	}

	fmt.Printf("\nDemo notebooks written to %s\n", dir)
	fmt.Printf("Run: nb --dir %s\n", dir)
}
