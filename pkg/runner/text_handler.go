package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/vfsh/pkg/domain"
)

// DefaultPrompt is shown before each line in interactive mode. "{cwd}" is
// replaced with the current virtual directory.
const DefaultPrompt = "{cwd} $ "

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader *bufio.Reader
	Writer io.Writer
	Styler Styler

	prompt      string
	interactive bool
	dir         string

	inputChan chan inputResult
	startOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithStyler decorates error, hint and system lines.
func WithStyler(s Styler) TextHandlerOption {
	return func(h *TextHandler) {
		h.Styler = s
	}
}

// WithPrompt overrides DefaultPrompt.
func WithPrompt(prompt string) TextHandlerOption {
	return func(h *TextHandler) {
		h.prompt = prompt
	}
}

// WithInteractive enables the prompt. Piped input runs without one.
func WithInteractive(interactive bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.interactive = interactive
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		prompt: DefaultPrompt,
		dir:    domain.RootDir,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetDir updates the directory shown in the prompt.
func (h *TextHandler) SetDir(dir string) {
	h.dir = dir
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// pump reads lines in the background so Input can honour cancellation.
func (h *TextHandler) pump() {
	for {
		text, err := h.Reader.ReadString('\n')

		// A last line without a trailing newline still counts.
		if text != "" {
			h.inputChan <- inputResult{text: text}
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				close(h.inputChan)
				return
			}
			h.inputChan <- inputResult{err: err}
			time.Sleep(50 * time.Millisecond)
		}
	}
}

func (h *TextHandler) Output(ctx context.Context, res domain.CommandResult) error {
	var failure *domain.CommandError
	errors.As(res.Err, &failure)

	last := len(res.Lines) - 1
	for n, line := range res.Lines {
		out := line
		if h.Styler != nil {
			switch {
			case failure != nil && line == failure.Message:
				out = h.Styler.Error(line)
			case res.Hinted && n == last:
				out = h.Styler.Hint(line)
			}
		}
		if _, err := fmt.Fprintln(h.Writer, out); err != nil {
			return err
		}
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
			if h.interactive {
				fmt.Fprint(h.Writer, strings.ReplaceAll(h.prompt, "{cwd}", h.dir))
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := SanitizeInput(strings.TrimRight(res.text, "\r\n"))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	if h.Styler != nil {
		msg = h.Styler.System(msg)
	}
	_, err := fmt.Fprintln(h.Writer, msg)
	return err
}
