package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/vfsh/pkg/domain"
)

// JSONHandler implements IOHandler for JSON-Lines communication.
// Each result is emitted as one object; input lines may be plain text or
// JSON strings.
type JSONHandler struct {
	Reader  *bufio.Reader
	Writer  io.Writer
	Encoder *json.Encoder
}

// ResultMessage is the wire form of a CommandResult.
type ResultMessage struct {
	Verb    string   `json:"verb"`
	Lines   []string `json:"lines"`
	Dir     string   `json:"dir,omitempty"`
	Exit    bool     `json:"exit,omitempty"`
	Outcome string   `json:"outcome"`
	Error   string   `json:"error,omitempty"`
}

// SystemMessage is the wire form of SystemOutput.
type SystemMessage struct {
	System string `json:"system"`
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Writer:  w,
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, res domain.CommandResult) error {
	if res.Verb == "" {
		return nil
	}
	msg := ResultMessage{
		Verb:    res.Verb,
		Lines:   res.Lines,
		Dir:     res.Dir,
		Exit:    res.Exit,
		Outcome: domain.Outcome(res.Err),
	}
	if msg.Lines == nil {
		msg.Lines = []string{}
	}
	if res.Err != nil {
		msg.Error = res.Err.Error()
	}
	return h.Encoder.Encode(msg)
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		text, err := h.Reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && text != "") {
			return "", err
		}
		text = strings.TrimSpace(text)

		var val string
		if err := json.Unmarshal([]byte(text), &val); err == nil {
			text = val
		}

		clean, err := SanitizeInput(text)
		if err != nil {
			// Rejected lines are reported and skipped; the session goes on.
			msg := fmt.Sprintf("Error: %v. Please try again.", err)
			if err := h.SystemOutput(ctx, msg); err != nil {
				return "", err
			}
			continue
		}
		return clean, nil
	}
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(SystemMessage{System: msg})
}
