package domain

import (
	"github.com/google/uuid"
)

// RootDir is the virtual directory every session starts in.
const RootDir = "/"

// Session represents the mutable state of one shell.
type Session struct {
	// ID identifies the session in logs and in the history store.
	ID string

	// CurrentDir is the canonical virtual working directory.
	CurrentDir string

	// RootDir is the absolute host directory holding the sandbox.
	// Empty until an archive has been loaded.
	RootDir string
}

// NewSession creates a session rooted at root, starting in the virtual root.
func NewSession(root string) *Session {
	return &Session{
		ID:         uuid.NewString(),
		CurrentDir: RootDir,
		RootDir:    root,
	}
}

// Ready reports whether a sandbox root has been established.
func (s *Session) Ready() bool {
	return s.RootDir != ""
}

// Apply commits the state changes carried by a command result.
func (s *Session) Apply(res CommandResult) {
	if res.Dir != "" {
		s.CurrentDir = res.Dir
	}
}

// Reset points the session at a new sandbox root and returns to the virtual root.
// The session ID is kept so the transcript continues across reloads.
func (s *Session) Reset(root string) {
	s.RootDir = root
	s.CurrentDir = RootDir
}
