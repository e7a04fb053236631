// Package history records the command transcript of a shell session.
//
// A transcript is append-only and purely presentational: the interpreter never
// reads it back. Stores are keyed by session ID so several sessions can share one
// backend (file directory or redis instance).
package history
