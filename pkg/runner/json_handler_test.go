package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONHandler_Output(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(strings.NewReader(""), out)
	ctx := context.Background()

	ok := domain.CommandResult{Verb: "cd", Dir: "/папка1"}
	require.NoError(t, h.Output(ctx, ok))

	failed := domain.CommandResult{Verb: "cat"}
	failed.Fail(domain.NewCommandError(domain.ErrUsage, nil, "Usage: cat <file>"))
	require.NoError(t, h.Output(ctx, failed))

	// Blank lines produce no record.
	require.NoError(t, h.Output(ctx, domain.CommandResult{}))

	dec := json.NewDecoder(out)
	var first, second ResultMessage
	require.NoError(t, dec.Decode(&first))
	require.NoError(t, dec.Decode(&second))
	assert.False(t, dec.More())

	assert.Equal(t, ResultMessage{Verb: "cd", Lines: []string{}, Dir: "/папка1", Outcome: "ok"}, first)
	assert.Equal(t, "usage", second.Outcome)
	assert.Equal(t, []string{"Usage: cat <file>"}, second.Lines)
	assert.NotEmpty(t, second.Error)
}

func TestJSONHandler_Input(t *testing.T) {
	h := NewJSONHandler(strings.NewReader("\"cat a b.txt\"\nls\ntree"), &bytes.Buffer{})
	ctx := context.Background()

	for _, want := range []string{"cat a b.txt", "ls", "tree"} {
		got, err := h.Input(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := h.Input(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestJSONHandler_InputRejectedLine(t *testing.T) {
	out := &bytes.Buffer{}
	in := strings.Repeat("a", 5000) + "\n\xff\xfe\nls\n"
	h := NewJSONHandler(strings.NewReader(in), out)
	ctx := context.Background()

	got, err := h.Input(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ls", got)

	dec := json.NewDecoder(out)
	var tooLarge, badUTF8 SystemMessage
	require.NoError(t, dec.Decode(&tooLarge))
	require.NoError(t, dec.Decode(&badUTF8))
	assert.Contains(t, tooLarge.System, "input exceeds maximum allowed size")
	assert.Contains(t, tooLarge.System, "Please try again.")
	assert.Contains(t, badUTF8.System, "Please try again.")
	assert.False(t, dec.More())
}

func TestJSONHandler_SystemOutput(t *testing.T) {
	out := &bytes.Buffer{}
	h := NewJSONHandler(strings.NewReader(""), out)

	require.NoError(t, h.SystemOutput(context.Background(), "ready"))
	assert.JSONEq(t, `{"system":"ready"}`, out.String())
}
