package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// PrintBanner writes the startup banner. Colours degrade to plain text when w
// is not a terminal.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	lines := []struct {
		text  string
		color string
	}{
		{`        __      _     `, "#34d399"},
		{` __   _/ _| ___| |__  `, "#2dd4bf"},
		{` \ \ / / |_ / __| '_ \ `, "#22d3ee"},
		{`  \ V /|  _|\__ \ | | |`, "#38bdf8"},
		{`   \_/ |_|  |___/_| |_|`, "#60a5fa"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("   sandboxed archive shell "+version).Faint())
	fmt.Fprintln(w, out.String("   type 'help' for commands, 'exit' to leave").Faint())
	fmt.Fprintln(w)
}
