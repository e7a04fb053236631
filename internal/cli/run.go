package cli

import (
	"context"
	"io"

	"github.com/aretw0/vfsh/internal/config"
)

// RunOptions contains all the configuration for the run command.
type RunOptions struct {
	Config      *config.Config
	Debug       bool
	JSON        bool
	Interactive bool

	In  io.Reader
	Out io.Writer
}

// Execute handles the 'run' command logic.
func Execute(ctx context.Context, opts RunOptions) error {
	return RunSession(ctx, opts)
}
