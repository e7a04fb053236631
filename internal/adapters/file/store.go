package file

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/aretw0/vfsh/pkg/history"
	"github.com/spf13/afero"
)

const ext = ".history"

// Store implements history.Store using one append-only text file per session.
type Store struct {
	BasePath string
	fs       afero.Fs
}

// Option configures the Store.
type Option func(*Store)

// WithFs overrides the filesystem (defaults to the OS filesystem).
func WithFs(fs afero.Fs) Option {
	return func(s *Store) {
		s.fs = fs
	}
}

// New creates a new Store with the given base path.
// If basePath is empty, it defaults to ".vfsh/history".
func New(basePath string, opts ...Option) *Store {
	if basePath == "" {
		basePath = filepath.Join(".vfsh", "history")
	}
	s := &Store{BasePath: basePath, fs: afero.NewOsFs()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) path(sessionID string) (string, error) {
	if sessionID == "" {
		return "", history.ErrEmptySessionID
	}
	if strings.ContainsAny(sessionID, `/\`) || sessionID == "." || sessionID == ".." {
		return "", fmt.Errorf("invalid session id %q", sessionID)
	}
	return filepath.Join(s.BasePath, sessionID+ext), nil
}

// Append writes line to the end of the session file, creating it if needed.
func (s *Store) Append(ctx context.Context, sessionID, line string) error {
	p, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if err := s.fs.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure history directory: %w", err)
	}

	f, err := s.fs.OpenFile(p, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}

	// One record per line.
	line = strings.ReplaceAll(line, "\n", " ")
	if _, err := f.WriteString(line + "\n"); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to append history: %w", err)
	}
	return f.Close()
}

// Lines reads the session file back.
func (s *Store) Lines(ctx context.Context, sessionID string) ([]string, error) {
	p, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}

	f, err := s.fs.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, history.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	defer f.Close()

	lines := []string{}
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan history file: %w", err)
	}
	return lines, nil
}

// Sessions returns the IDs of all transcripts in BasePath.
func (s *Store) Sessions(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	ids := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && filepath.Ext(name) == ext {
			ids = append(ids, strings.TrimSuffix(name, ext))
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// Delete removes the session file.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	p, err := s.path(sessionID)
	if err != nil {
		return err
	}

	if err := s.fs.Remove(p); err != nil {
		if os.IsNotExist(err) {
			return history.ErrSessionNotFound
		}
		return fmt.Errorf("failed to delete history file: %w", err)
	}
	return nil
}
