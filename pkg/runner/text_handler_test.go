package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bracketStyler struct{}

func (bracketStyler) Error(s string) string  { return "[E]" + s }
func (bracketStyler) Hint(s string) string   { return "[H]" + s }
func (bracketStyler) System(s string) string { return "[S]" + s }

func TestTextHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader(""), out)

	res := domain.CommandResult{Verb: "ls"}
	res.Print("a.txt", "dir")

	require.NoError(t, h.Output(context.Background(), res))
	assert.Equal(t, "a.txt\ndir\n", out.String())
}

func TestTextHandler_OutputStyled(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader(""), out, WithStyler(bracketStyler{}))

	ok := domain.CommandResult{Verb: "cat"}
	ok.Print("# Title\nbody", "#notes")
	ok.Hint("# You can read another file with 'cat <file>'.")
	require.NoError(t, h.Output(context.Background(), ok))

	var failed domain.CommandResult
	failed.Fail(domain.NewCommandError(domain.ErrNotFound, nil, "Error: file 'x' not found."))
	require.NoError(t, h.Output(context.Background(), failed))

	require.NoError(t, h.SystemOutput(context.Background(), ">>> Archive: /tmp/a.zip"))

	assert.Equal(t,
		"# Title\nbody\n#notes\n[H]# You can read another file with 'cat <file>'.\n"+
			"[E]Error: file 'x' not found.\n[S]>>> Archive: /tmp/a.zip\n",
		out.String())
}

func TestTextHandler_Input(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader("cd папка1\r\nls\ntree"), out)
	ctx := context.Background()

	for _, want := range []string{"cd папка1", "ls", "tree"} {
		got, err := h.Input(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Empty(t, out.String(), "no prompt when not interactive")
}

func TestTextHandler_Prompt(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader("ls\n"), out, WithInteractive(true))
	h.SetDir("/папка1")

	_, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "/папка1 $ ", out.String())

	out.Reset()
	custom := NewTextHandler(strings.NewReader("ls\n"), out, WithInteractive(true), WithPrompt("vfsh:{cwd}> "))
	_, err = custom.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "vfsh:/> ", out.String())
}

func TestTextHandler_InputRejectsOversized(t *testing.T) {
	t.Setenv(EnvMaxInputSize, "8")
	out := &bytes.Buffer{}
	h := NewTextHandler(strings.NewReader("cat a-very-long-name\nls\n"), out)

	got, err := h.Input(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ls", got)
	assert.Contains(t, out.String(), "Please try again.")
}

func TestTextHandler_InputCancellation(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	h := NewTextHandler(pr, &bytes.Buffer{})
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		_, err := h.Input(ctx)
		done <- err
	}()

	cancel()
	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
	case <-time.After(time.Second):
		t.Fatal("Input did not honour cancellation")
	}
}
