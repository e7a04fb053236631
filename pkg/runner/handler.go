package runner

import (
	"context"

	"github.com/aretw0/vfsh/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Output presents the result of one command.
	Output(ctx context.Context, res domain.CommandResult) error

	// Input reads the next command line. io.EOF ends the session.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message (banner, warnings) distinct from command output.
	SystemOutput(ctx context.Context, msg string) error
}

// Prompter is implemented by handlers whose prompt shows the current directory.
// The Runner calls SetDir before every Input.
type Prompter interface {
	SetDir(dir string)
}

// Styler decorates output lines. Implementations must return plain text
// unchanged when styling is disabled.
type Styler interface {
	Error(line string) string
	Hint(line string) string
	System(line string) string
}
