package domain

import (
	"context"
	"time"
)

// CommandEvent describes one executed command.
type CommandEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	SessionID string        `json:"session_id"`
	Verb      string        `json:"verb"`
	Dir       string        `json:"dir"` // current directory after the command
	Duration  time.Duration `json:"duration"`
	Outcome   string        `json:"outcome"`
	Err       error         `json:"-"`
}

// Hooks defines callbacks for shell observability.
type Hooks struct {
	OnCommand func(context.Context, *CommandEvent)
}

// Merge combines two hook sets; both callbacks fire, h first.
func (h Hooks) Merge(other Hooks) Hooks {
	switch {
	case h.OnCommand == nil:
		return other
	case other.OnCommand == nil:
		return h
	}
	first, second := h.OnCommand, other.OnCommand
	return Hooks{
		OnCommand: func(ctx context.Context, e *CommandEvent) {
			first(ctx, e)
			second(ctx, e)
		},
	}
}
