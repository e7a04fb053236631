package vfsh

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/aretw0/vfsh/pkg/archive"
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/history"
	"github.com/aretw0/vfsh/pkg/interpreter"
	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/spf13/afero"
)

// Shell is the high-level entry point of the library.
// It owns a Session and the sandbox directory the session is rooted in.
type Shell struct {
	interp  *interpreter.Interpreter
	session *domain.Session
	history history.Store
	fs      afero.Fs
	logger  *slog.Logger
	hooks   domain.Hooks

	hints      bool
	policy     vpath.Policy
	extractDir string
	keepRoot   bool

	// ownsRoot is set when the sandbox was created by the Shell and may be removed.
	ownsRoot bool
	archive  string
}

// Option defines a functional option for configuring the Shell.
type Option func(*Shell)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Shell) {
		s.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Shell) {
		s.hooks = hooks
	}
}

// WithHistory sets the transcript store (default: in-memory).
func WithHistory(store history.Store) Option {
	return func(s *Shell) {
		s.history = store
	}
}

// WithHints toggles the help lines printed after navigation commands.
func WithHints(enabled bool) Option {
	return func(s *Shell) {
		s.hints = enabled
	}
}

// WithPolicy selects how ".." above the virtual root is handled.
func WithPolicy(p vpath.Policy) Option {
	return func(s *Shell) {
		s.policy = p
	}
}

// WithFs sets the filesystem for both extraction and command execution.
func WithFs(fs afero.Fs) Option {
	return func(s *Shell) {
		s.fs = fs
	}
}

// WithExtractDir extracts into dir instead of a fresh temporary directory.
// The directory is never removed by Close.
func WithExtractDir(dir string) Option {
	return func(s *Shell) {
		s.extractDir = dir
	}
}

// WithKeepRoot leaves the temporary sandbox in place on Close.
func WithKeepRoot(keep bool) Option {
	return func(s *Shell) {
		s.keepRoot = keep
	}
}

func newShell(opts []Option) *Shell {
	s := &Shell{
		hints:  true,
		policy: vpath.Clamp,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.history == nil {
		s.history = history.NewMemory()
	}

	s.interp = interpreter.New(
		interpreter.WithFs(s.fs),
		interpreter.WithHints(s.hints),
		interpreter.WithPolicy(s.policy),
		interpreter.WithLogger(s.logger),
		interpreter.WithHooks(s.hooks),
	)
	return s
}

// Open extracts archivePath into a sandbox and starts a session rooted there.
func Open(ctx context.Context, archivePath string, opts ...Option) (*Shell, error) {
	s := newShell(opts)

	root, owned, err := s.materialize(ctx, archivePath, s.extractDir)
	if err != nil {
		return nil, err
	}
	s.ownsRoot = owned
	s.session = domain.NewSession(root)
	s.logger = s.logger.With("session", s.session.ID)
	return s, nil
}

// New wraps an already materialized sandbox directory.
func New(rootDir string, opts ...Option) (*Shell, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("rootDir is required")
	}
	s := newShell(opts)

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}
	ok, err := afero.IsDir(s.fs, absRoot)
	if err != nil || !ok {
		return nil, fmt.Errorf("sandbox root %q is not a directory", rootDir)
	}

	s.session = domain.NewSession(absRoot)
	s.logger = s.logger.With("session", s.session.ID)
	return s, nil
}

// materialize extracts archivePath into dir, or into a new temporary directory
// when dir is empty. owned reports whether the caller may remove the result.
func (s *Shell) materialize(ctx context.Context, archivePath, dir string) (root string, owned bool, err error) {
	absArchive, err := filepath.Abs(archivePath)
	if err != nil {
		return "", false, fmt.Errorf("invalid archive path: %w", err)
	}

	if dir != "" {
		if root, err = filepath.Abs(dir); err != nil {
			return "", false, fmt.Errorf("invalid extract dir: %w", err)
		}
	} else {
		if root, err = afero.TempDir(s.fs, "", "vfsh-"); err != nil {
			return "", false, fmt.Errorf("failed to create sandbox: %w", err)
		}
		owned = true
	}

	stats, err := archive.Extract(ctx, absArchive, root,
		archive.WithFs(s.fs),
		archive.WithLogger(s.logger),
	)
	if err != nil {
		if owned {
			_ = s.fs.RemoveAll(root)
		}
		return "", false, fmt.Errorf("failed to load archive: %w", err)
	}

	s.archive = absArchive
	s.logger.Info("Archive loaded",
		"archive", absArchive,
		"root", root,
		"files", stats.Files,
		"dirs", stats.Dirs,
		"skipped", stats.Skipped,
	)
	return root, owned, nil
}

// Exec records line in the transcript, runs it and applies the result to the session.
func (s *Shell) Exec(ctx context.Context, line string) (domain.CommandResult, error) {
	if strings.TrimSpace(line) != "" {
		if err := s.history.Append(ctx, s.session.ID, line); err != nil {
			s.logger.Warn("Failed to record history", "err", err)
		}
	}

	res, err := s.interp.Execute(ctx, *s.session, line)
	if err != nil {
		return res, err
	}
	s.session.Apply(res)
	return res, nil
}

// Reload replaces the sandbox with the contents of another archive.
// The session keeps its ID and returns to "/".
func (s *Shell) Reload(ctx context.Context, archivePath string) error {
	root, owned, err := s.materialize(ctx, archivePath, "")
	if err != nil {
		return err
	}

	old, oldOwned := s.session.RootDir, s.ownsRoot
	s.session.Reset(root)
	s.ownsRoot = owned

	if oldOwned && !s.keepRoot {
		if err := s.fs.RemoveAll(old); err != nil {
			s.logger.Warn("Failed to remove previous sandbox", "root", old, "err", err)
		}
	}
	return nil
}

// Session returns a snapshot of the session state.
func (s *Shell) Session() domain.Session {
	return *s.session
}

// History returns the transcript store.
func (s *Shell) History() history.Store {
	return s.history
}

// ArchivePath returns the absolute path of the loaded archive, if any.
func (s *Shell) ArchivePath() string {
	return s.archive
}

// Close removes the sandbox if the Shell created it. Safe to call twice.
func (s *Shell) Close() error {
	if !s.ownsRoot || s.keepRoot {
		return nil
	}
	s.ownsRoot = false
	if err := s.fs.RemoveAll(s.session.RootDir); err != nil {
		return fmt.Errorf("failed to remove sandbox: %w", err)
	}
	s.logger.Debug("Sandbox removed", "root", s.session.RootDir)
	return nil
}
