package tui

import (
	"io"

	"github.com/muesli/termenv"
)

// Styler colours shell output: errors red, hints faint, system lines bold.
// It implements runner.Styler.
type Styler struct {
	out *termenv.Output
}

// NewStyler detects the colour profile of w.
func NewStyler(w io.Writer, opts ...termenv.OutputOption) *Styler {
	return &Styler{out: termenv.NewOutput(w, opts...)}
}

func (s *Styler) Error(line string) string {
	return s.out.String(line).Foreground(s.out.Color("#f87171")).String()
}

func (s *Styler) Hint(line string) string {
	return s.out.String(line).Faint().String()
}

func (s *Styler) System(line string) string {
	return s.out.String(line).Bold().String()
}
