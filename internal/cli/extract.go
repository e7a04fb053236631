package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aretw0/vfsh/internal/config"
	"github.com/aretw0/vfsh/pkg/archive"
)

// ExtractArchive unpacks archivePath into dest without starting a session.
func ExtractArchive(ctx context.Context, archivePath, dest string, debug bool, logCfg config.LogConfig, out io.Writer) error {
	logger := createLogger(debug, logCfg)

	absDest, err := filepath.Abs(dest)
	if err != nil {
		return fmt.Errorf("invalid destination: %w", err)
	}

	stats, err := archive.Extract(ctx, archivePath, absDest, archive.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, systemMessage("Extracted %d files and %d directories into %s", stats.Files, stats.Dirs, absDest))
	if stats.Skipped > 0 {
		fmt.Fprintln(out, systemMessage("Skipped %d unsupported entries (links or devices)", stats.Skipped))
	}
	return nil
}
