package domain

// CommandResult is the outcome of interpreting one command line.
type CommandResult struct {
	// Verb is the command that was dispatched (empty for a blank line).
	Verb string

	// Lines are the output entries in order. An entry may span several lines
	// (e.g. the content of a file).
	Lines []string

	// Dir is the new current directory, set only by a successful cd or return.
	Dir string

	// Exit is true when the session should terminate.
	Exit bool

	// Err classifies the failure, if any. Its message is already part of Lines.
	Err error

	// Hinted is true when the last entry of Lines is a help hint rather than
	// command output.
	Hinted bool
}

// Print appends output entries.
func (r *CommandResult) Print(lines ...string) {
	r.Lines = append(r.Lines, lines...)
}

// Hint appends a help hint as the final output entry.
func (r *CommandResult) Hint(text string) {
	r.Lines = append(r.Lines, text)
	r.Hinted = true
}

// Fail records a classified error and prints its message.
func (r *CommandResult) Fail(err *CommandError) {
	r.Err = err
	r.Lines = append(r.Lines, err.Message)
}

// OK reports whether the command completed without a classified error.
func (r CommandResult) OK() bool {
	return r.Err == nil
}
