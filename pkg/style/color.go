package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// ColorEnabled reports whether styled output should be written to out.
// Color is off when NO_COLOR is set or out is not a color terminal.
func ColorEnabled(out *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if !isatty.IsTerminal(out.Fd()) && !isatty.IsCygwinTerminal(out.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// Configure sets up lipgloss and pterm for out
func Configure(out *os.File) {
	if ColorEnabled(out) {
		return
	}
	DisableColor()
}

// DisableColor forces plain output from both lipgloss and pterm
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
	pterm.DisableColor()
}
