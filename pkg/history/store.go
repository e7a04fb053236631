package history

import (
	"context"
	"errors"
)

// ErrSessionNotFound is returned when a transcript does not exist.
var ErrSessionNotFound = errors.New("history session not found")

// Store persists transcripts.
type Store interface {
	// Append adds one raw command line to the session transcript.
	Append(ctx context.Context, sessionID, line string) error

	// Lines returns the transcript in the order it was recorded.
	// Returns ErrSessionNotFound if nothing was ever recorded for sessionID.
	Lines(ctx context.Context, sessionID string) ([]string, error)

	// Sessions lists the known session IDs, sorted.
	Sessions(ctx context.Context) ([]string, error)

	// Delete removes a transcript.
	// Returns ErrSessionNotFound if it does not exist.
	Delete(ctx context.Context, sessionID string) error
}

// ErrEmptySessionID is returned by stores when called without a session ID.
var ErrEmptySessionID = errors.New("sessionID cannot be empty")
