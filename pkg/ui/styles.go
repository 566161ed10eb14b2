package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// COLOR PALETTE - Adaptive colors for light and dark terminals
// Light mode colors tuned for WCAG AA compliance (contrast ratio >= 4.5:1)
// ══════════════════════════════════════════════════════════════════════════════

var (
	ColorText    = lipgloss.AdaptiveColor{Light: "#1A1A1A", Dark: "#F8F8F2"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#6272A4"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#6B47D9", Dark: "#BD93F9"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "#006080", Dark: "#8BE9FD"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#007700", Dark: "#50FA7B"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "#B06800", Dark: "#FFB86C"}
	ColorDanger  = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"}
)

// ══════════════════════════════════════════════════════════════════════════════
// MESSAGE STYLES
// ══════════════════════════════════════════════════════════════════════════════

var (
	SuccessStyle = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ColorDanger)
	InfoStyle    = lipgloss.NewStyle().Foreground(ColorInfo)
	HeadingStyle = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	BannerStyle  = lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true)
	ContentStyle = lipgloss.NewStyle().Foreground(ColorWarning)
	ListStyle    = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)

	boxBorderStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	boxNameStyle   = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)

// Success renders a confirmation message.
func Success(msg string) string { return renderLines(SuccessStyle, msg) }

// Warning renders a conflict or no-op message.
func Warning(msg string) string { return renderLines(WarningStyle, msg) }

// Error renders a failure or not-found message.
func Error(msg string) string { return renderLines(ErrorStyle, msg) }

// Info renders a neutral message.
func Info(msg string) string { return renderLines(InfoStyle, msg) }

// Heading renders a menu heading.
func Heading(msg string) string { return HeadingStyle.Render(msg) }

// renderLines styles each line on its own. Rendering a multi-line string in
// one call would pad every line to the widest one.
func renderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
