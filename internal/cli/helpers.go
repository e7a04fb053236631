package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/vfsh/internal/config"
	"github.com/aretw0/vfsh/internal/logging"
	"github.com/aretw0/vfsh/internal/presentation/tui"
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/runner"
)

// createLogger configures the application logger on Stderr.
// Debug mode overrides the configured level.
func createLogger(debug bool, cfg config.LogConfig) *slog.Logger {
	if debug {
		return logging.NewWithWriter(stderr, slog.LevelDebug, logging.Format(cfg.Format))
	}
	level, err := logging.ParseLevel(cfg.Level)
	if err != nil {
		return logging.NewNop()
	}
	return logging.NewWithWriter(stderr, level, logging.Format(cfg.Format))
}

// systemMessage formats a standardized system line.
func systemMessage(format string, args ...any) string {
	return fmt.Sprintf(">>> %s", fmt.Sprintf(format, args...))
}

func createDebugHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnCommand: func(ctx context.Context, e *domain.CommandEvent) {
			if e.Err != nil {
				logger.Debug("Command (Error)", "verb", e.Verb, "dir", e.Dir, "outcome", e.Outcome, "err", e.Err)
				return
			}
			logger.Debug("Command", "verb", e.Verb, "dir", e.Dir, "duration", e.Duration)
		},
	}
}

// createHandler picks the IOHandler for the session.
func createHandler(opts RunOptions, prompt string) runner.IOHandler {
	if opts.JSON {
		return runner.NewJSONHandler(opts.In, opts.Out)
	}

	handlerOpts := []runner.TextHandlerOption{
		runner.WithInteractive(opts.Interactive),
		runner.WithPrompt(prompt),
	}
	if opts.Interactive {
		handlerOpts = append(handlerOpts, runner.WithStyler(tui.NewStyler(outOrDiscard(opts.Out))))
	}
	return runner.NewTextHandler(opts.In, opts.Out, handlerOpts...)
}

func outOrDiscard(w io.Writer) io.Writer {
	if w == nil {
		return io.Discard
	}
	return w
}
