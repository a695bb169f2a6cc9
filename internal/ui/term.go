package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Early shift: cyan
	colorEarly = color.New(color.FgCyan, color.Bold)

	// Late shift: magenta
	colorLate = color.New(color.FgMagenta, color.Bold)

	// Free slots: green
	colorFree = color.New(color.FgGreen)

	// Conflicts: red to make them pop
	colorConflict = color.New(color.FgRed, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information like driving segments
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatShift(s string, early bool) string {
	if early {
		return colorEarly.Sprint(s)
	}
	return colorLate.Sprint(s)
}

func formatFree(s string) string {
	return colorFree.Sprint(s)
}

func formatConflict(s string) string {
	return colorConflict.Sprint(s)
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
