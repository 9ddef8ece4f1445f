package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	faint lipgloss.Style
	alert lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		faint: r.NewStyle().Faint(true),
		alert: r.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// styled decorates the session's banner and errors.
func (s *session) styled(st styles) {
	s.faint = func(text string) string { return st.faint.Render(text) }
	s.alert = func(text string) string { return st.alert.Render(text) }
}
