package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/aretw0/vfsh/pkg/interpreter"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyler_AsciiIsPlain(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, termenv.WithProfile(termenv.Ascii))

	assert.Equal(t, "Error: file 'x' not found.", s.Error("Error: file 'x' not found."))
	assert.Equal(t, "# hint", s.Hint("# hint"))
	assert.Equal(t, ">>> Archive: /a.zip", s.System(">>> Archive: /a.zip"))
}

func TestStyler_ANSI(t *testing.T) {
	s := NewStyler(&bytes.Buffer{}, termenv.WithProfile(termenv.TrueColor))

	styled := s.Error("boom")
	assert.NotEqual(t, "boom", styled)
	assert.Contains(t, styled, "boom")
	assert.True(t, strings.HasPrefix(styled, "\x1b["))
}

func TestPrintBanner(t *testing.T) {
	var buf bytes.Buffer
	PrintBanner(&buf, "1.2.3")

	assert.Contains(t, buf.String(), "sandboxed archive shell 1.2.3")
	assert.NotContains(t, buf.String(), "\x1b[", "a buffer is not a terminal")
}

func TestCommandReference(t *testing.T) {
	md := CommandReference(interpreter.Commands())

	assert.Contains(t, md, "| `chmod <file> <mode>` |")
	assert.Contains(t, md, "| `return` | Return to the root directory. |")
	assert.Equal(t, len(interpreter.Commands()), strings.Count(md, "\n| `"))
}

func TestNewRenderer(t *testing.T) {
	render, err := NewRenderer("notty")
	require.NoError(t, err)

	out, err := render(CommandReference(interpreter.Commands()))
	require.NoError(t, err)
	assert.Contains(t, out, "chmod")
}
