package report

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/signalnine/goldtable/internal/result"
)

var (
	colorMatch    = lipgloss.Color("10")
	colorNoAnswer = lipgloss.Color("12")
)

// styler decides how a cell is highlighted. Styling is applied to text that
// is already padded so escape codes never affect alignment.
type styler struct {
	match    lipgloss.Style
	noAnswer lipgloss.Style
}

func newStyler(w io.Writer, mode string) styler {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(colorProfile(w, mode))
	return styler{
		match:    r.NewStyle().Foreground(colorMatch),
		noAnswer: r.NewStyle().Foreground(colorNoAnswer),
	}
}

func colorProfile(w io.Writer, mode string) termenv.Profile {
	switch mode {
	case "always":
		return termenv.ANSI
	case "never":
		return termenv.Ascii
	}
	fd, ok := fileDescriptor(w)
	if ok && (isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		return termenv.ANSI
	}
	return termenv.Ascii
}

func (s styler) cell(text string, r result.Result, matches bool) string {
	switch {
	case matches:
		return s.match.Render(text)
	case r.Kind == result.TimeLimit || r.Kind == result.SolverError:
		return s.noAnswer.Render(text)
	}
	return text
}
