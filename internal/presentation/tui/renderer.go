package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/vfsh/pkg/interpreter"
	"github.com/charmbracelet/glamour"
)

// NewRenderer returns a function that renders markdown using glamour.
// style is a glamour style name; empty means auto-detect from the terminal.
func NewRenderer(style string) (func(string) (string, error), error) {
	opt := glamour.WithAutoStyle()
	if style != "" {
		opt = glamour.WithStandardStyle(style)
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(100))
	if err != nil {
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}, nil
}

// CommandReference renders the command catalog as a markdown document.
func CommandReference(cmds []interpreter.Command) string {
	var b strings.Builder
	b.WriteString("# vfsh commands\n\n")
	b.WriteString("Paths are virtual: `/` is the root of the extracted archive and `..` never leaves it.\n\n")
	b.WriteString("| Command | Description |\n|---|---|\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "| `%s` | %s |\n", c.Usage, c.Summary)
	}
	return b.String()
}
