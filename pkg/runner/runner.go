package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aretw0/vfsh/pkg/domain"
)

// Shell is what the Runner drives. *vfsh.Shell satisfies it.
type Shell interface {
	Exec(ctx context.Context, line string) (domain.CommandResult, error)
	Session() domain.Session
}

// Runner handles the read-eval-print loop using provided IO.
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on stdin/stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	// Signals stops the loop on SIGINT/SIGTERM.
	Signals bool
}

// NewRunner creates a new Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.Logger == nil {
		r.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return r
}

// Run executes the loop until exit, EOF or cancellation. EOF and cancellation
// are clean terminations and return nil.
func (r *Runner) Run(ctx context.Context, sh Shell) error {
	handler := r.resolveHandler()

	var signals *SignalManager
	if r.Signals {
		signals = NewSignalManager(ctx)
		defer signals.Stop()
		ctx = signals.Context()
	}

	for {
		if p, ok := handler.(Prompter); ok {
			p.SetDir(sh.Session().CurrentDir)
		}

		line, err := handler.Input(ctx)
		if err != nil {
			if signals != nil {
				signals.CheckRace()
			}
			if ctx.Err() != nil {
				r.Logger.Debug("Runner input: Context cancelled", "err", ctx.Err())
				return nil
			}
			if errors.Is(err, io.EOF) {
				r.Logger.Debug("Runner input: EOF")
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		res, err := sh.Exec(ctx, line)
		if err != nil {
			return fmt.Errorf("execution error: %w", err)
		}

		if err := handler.Output(ctx, res); err != nil {
			return fmt.Errorf("output error: %w", err)
		}

		if res.Exit {
			r.Logger.Debug("Runner: exit requested", "session", sh.Session().ID)
			return nil
		}
	}
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		// Memoize to prevent creating new pumps on subsequent Run calls.
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}
