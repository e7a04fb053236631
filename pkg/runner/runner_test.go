package runner_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/vfsh"
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/runner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeShell echoes lines back and exits on "exit".
type fakeShell struct {
	sess  domain.Session
	lines []string
	err   error
}

func (f *fakeShell) Exec(ctx context.Context, line string) (domain.CommandResult, error) {
	if f.err != nil {
		return domain.CommandResult{}, f.err
	}
	f.lines = append(f.lines, line)
	res := domain.CommandResult{Verb: line}
	if line == "exit" {
		res.Exit = true
		res.Print("# Exiting...")
		return res, nil
	}
	res.Print("echo: " + line)
	return res, nil
}

func (f *fakeShell) Session() domain.Session { return f.sess }

func TestRunner_StopsOnExit(t *testing.T) {
	out := &bytes.Buffer{}
	sh := &fakeShell{sess: domain.Session{CurrentDir: "/"}}
	r := runner.NewRunner(runner.WithInputHandler(
		runner.NewTextHandler(strings.NewReader("ls\nexit\nnever\n"), out),
	))

	require.NoError(t, r.Run(context.Background(), sh))
	assert.Equal(t, []string{"ls", "exit"}, sh.lines)
	assert.Equal(t, "echo: ls\n# Exiting...\n", out.String())
}

func TestRunner_JSONSkipsRejectedLines(t *testing.T) {
	out := &bytes.Buffer{}
	sh := &fakeShell{sess: domain.Session{CurrentDir: "/"}}
	in := strings.Repeat("a", 5000) + "\nls\nexit\n"
	r := runner.NewRunner(runner.WithInputHandler(runner.NewJSONHandler(strings.NewReader(in), out)))

	require.NoError(t, r.Run(context.Background(), sh))
	assert.Equal(t, []string{"ls", "exit"}, sh.lines)
	assert.Contains(t, out.String(), `"system":"Error: input exceeds maximum allowed size`)
}

func TestRunner_EOFIsClean(t *testing.T) {
	sh := &fakeShell{}
	r := runner.NewRunner(runner.WithInputHandler(
		runner.NewTextHandler(strings.NewReader("ls\n"), io.Discard),
	))

	assert.NoError(t, r.Run(context.Background(), sh))
	assert.Equal(t, []string{"ls"}, sh.lines)
}

func TestRunner_CancellationIsClean(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(pr, io.Discard)),
		runner.WithSignals(true),
	)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- r.Run(ctx, &fakeShell{}) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("runner did not stop after cancellation")
	}
}

func TestRunner_ExecError(t *testing.T) {
	boom := errors.New("boom")
	r := runner.NewRunner(runner.WithInputHandler(
		runner.NewTextHandler(strings.NewReader("ls\n"), io.Discard),
	))

	err := r.Run(context.Background(), &fakeShell{err: boom})
	assert.ErrorIs(t, err, boom)
}

func TestRunner_PromptFollowsSession(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "папка1"), 0755))

	sh, err := vfsh.New(root, vfsh.WithHints(false))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	r := runner.NewRunner(runner.WithInputHandler(
		runner.NewTextHandler(strings.NewReader("cd папка1\npwd\nexit\n"), out, runner.WithInteractive(true)),
	))
	require.NoError(t, r.Run(context.Background(), sh))

	assert.Equal(t, "/ $ /папка1 $ /папка1\n/папка1 $ # Exiting...\n", out.String())
}

func TestRunner_JSONSession(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "README.txt"), []byte("hello"), 0644))

	sh, err := vfsh.New(root, vfsh.WithHints(false))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	r := runner.NewRunner(runner.WithInputHandler(
		runner.NewJSONHandler(strings.NewReader("cat README.txt\nbogus\n"), out),
	))
	require.NoError(t, r.Run(context.Background(), sh))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.JSONEq(t, `{"verb":"cat","lines":["hello"],"outcome":"ok"}`, lines[0])
	assert.Contains(t, lines[1], `"outcome":"unknown_command"`)
	assert.Contains(t, lines[1], `Unknown command: bogus`)
}
