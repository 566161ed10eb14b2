package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

var bannerArt = []string{
	` _   _       _       _                 _     ____ _     ___ `,
	`| \ | | ___ | |_ ___| |__   ___   ___ | | __/ ___| |   |_ _|`,
	`|  \| |/ _ \| __/ _ \ '_ \ / _ \ / _ \| |/ / |   | |    | | `,
	`| |\  | (_) | ||  __/ |_) | (_) | (_) |   <| |___| |___ | | `,
	`|_| \_|\___/ \__\___|_.__/ \___/ \___/|_|\_\\____|_____|___|`,
}

// Banner returns the start-up banner followed by the welcome lines.
func Banner() string {
	width := 0
	for _, line := range bannerArt {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}

	var b strings.Builder
	for _, line := range bannerArt {
		b.WriteString(BannerStyle.Render(runewidth.FillRight(line, width)))
		b.WriteByte('\n')
	}
	b.WriteString(BannerStyle.Render("Welcome to the NotebookCLI!"))
	b.WriteByte('\n')
	b.WriteString(SuccessStyle.Render("Let's get started!"))
	b.WriteByte('\n')
	return b.String()
}
