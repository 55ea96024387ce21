package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	warnIcon  = "!"
	errorIcon = "✗"
	causeIcon = "→"
)

var (
	infoColor   = lipgloss.Color("#667085")
	warnColor   = lipgloss.Color("#F59E0B")
	errorColor  = lipgloss.Color("#D93025")
	detailColor = lipgloss.Color("#98A2B3")
)

// colorProfile returns termenv.Ascii when NO_COLOR is set and TrueColor otherwise.
// Output is usually piped through build tools, so the terminal is not probed.
func colorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.TrueColor
}

func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile())
	return r
}
