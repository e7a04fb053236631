package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/aretw0/vfsh"
	"github.com/aretw0/vfsh/internal/metrics"
	"github.com/aretw0/vfsh/internal/presentation/tui"
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/runner"
)

// stderr is where logs go. Tests swap it out.
var stderr io.Writer = os.Stderr

// RunSession executes a single interactive session over the configured archive.
func RunSession(ctx context.Context, opts RunOptions) error {
	cfg := opts.Config
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.In == nil {
		opts.In = os.Stdin
	}
	logger := createLogger(opts.Debug, cfg.Log)

	if opts.Interactive && !opts.JSON {
		tui.PrintBanner(opts.Out, vfsh.Version)
	}

	store, closeStore, err := OpenHistory(ctx, cfg.History, logger)
	if err != nil {
		return fmt.Errorf("error initializing history: %w", err)
	}
	defer closeStore()

	var hooks domain.Hooks
	var m *metrics.Metrics
	if cfg.MetricsFile != "" {
		m = metrics.New()
		hooks = hooks.Merge(m.Hooks())
	}
	if opts.Debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	sh, err := vfsh.Open(ctx, cfg.Archive,
		vfsh.WithLogger(logger),
		vfsh.WithHooks(hooks),
		vfsh.WithHistory(store),
		vfsh.WithHints(cfg.Hints),
		vfsh.WithPolicy(cfg.Policy()),
		vfsh.WithExtractDir(cfg.ExtractDir),
		vfsh.WithKeepRoot(cfg.Keep),
	)
	if err != nil {
		return fmt.Errorf("error initializing shell: %w", err)
	}
	defer func() {
		if err := sh.Close(); err != nil {
			logger.Warn("Failed to clean up sandbox", "err", err)
		}
	}()

	sess := sh.Session()
	logger.Info("Session Created", "session_id", sess.ID, "archive", sh.ArchivePath(), "root", sess.RootDir)

	handler := createHandler(opts, cfg.Prompt)
	if err := handler.SystemOutput(ctx, systemMessage("Archive: %s", sh.ArchivePath())); err != nil {
		return err
	}
	if cfg.Keep {
		_ = handler.SystemOutput(ctx, systemMessage("Sandbox: %s", sess.RootDir))
	}

	r := runner.NewRunner(
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithSignals(true),
	)
	runErr := r.Run(ctx, sh)

	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsFile); err != nil {
			logger.Warn("Failed to write metrics", "path", cfg.MetricsFile, "err", err)
		}
	}

	logger.Info("Session Finished", "session_id", sess.ID)
	return runErr
}
