// Package cli provides shared presentation helpers for colorvane commands.
package cli

import (
	"os"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/colorvane/colorvane/internal/catalog"
)

// Swatch renders a colored block for the entry, with the entry's hex code
// as legible text on top of its own color.
func Swatch(e catalog.Entry) string {
	fg := "#000000"
	if isDark(e) {
		fg = "#ffffff"
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(e.Hex())).
		Foreground(lipgloss.Color(fg)).
		Padding(0, 1).
		Render(e.Hex())
}

// Block renders a plain color block with no text, for compact listings.
func Block(e catalog.Entry) string {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(e.Hex())).
		Render("   ")
}

// isDark reports whether text on this color needs a light foreground,
// judged by relative luminance.
func isDark(e catalog.Entry) bool {
	c := colorful.Color{
		R: float64(e.R) / 255,
		G: float64(e.G) / 255,
		B: float64(e.B) / 255,
	}
	_, y, _ := c.Xyz()
	return y < 0.4
}

// StdoutIsTerminal reports whether stdout is attached to a terminal.
// Styled swatches are only emitted interactively; pipes get plain text.
func StdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
