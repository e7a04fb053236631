package interpreter

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/spf13/afero"
)

// Interpreter executes command lines against a session's sandbox.
type Interpreter struct {
	fs     afero.Fs
	hints  bool
	policy vpath.Policy
	logger *slog.Logger
	hooks  domain.Hooks

	handlers map[string]handler
}

type handler struct {
	run func(i *Interpreter, sess domain.Session, args []string) domain.CommandResult
	// needsRoot marks commands that resolve paths and therefore require a sandbox.
	needsRoot bool
}

// Option configures the Interpreter.
type Option func(*Interpreter)

// WithFs sets the filesystem used to access the sandbox.
func WithFs(fs afero.Fs) Option {
	return func(i *Interpreter) {
		i.fs = fs
	}
}

// WithHints toggles the help line appended after successful ls, cd, cat and tree.
func WithHints(enabled bool) Option {
	return func(i *Interpreter) {
		i.hints = enabled
	}
}

// WithPolicy sets how ".." above the virtual root is handled.
func WithPolicy(p vpath.Policy) Option {
	return func(i *Interpreter) {
		i.policy = p
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(i *Interpreter) {
		i.logger = logger
	}
}

// WithHooks registers observability hooks.
func WithHooks(hooks domain.Hooks) Option {
	return func(i *Interpreter) {
		i.hooks = hooks
	}
}

// New creates an Interpreter backed by the host filesystem unless WithFs is given.
func New(opts ...Option) *Interpreter {
	i := &Interpreter{
		fs:     afero.NewOsFs(),
		hints:  true,
		policy: vpath.Clamp,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(i)
	}

	i.handlers = map[string]handler{
		"ls":    {run: (*Interpreter).ls, needsRoot: true},
		"cd":    {run: (*Interpreter).cd, needsRoot: true},
		"cat":   {run: (*Interpreter).cat, needsRoot: true},
		"chmod": {run: (*Interpreter).chmod, needsRoot: true},
		"tree":  {run: (*Interpreter).tree, needsRoot: true},
		"return": {
			run: func(i *Interpreter, sess domain.Session, _ []string) domain.CommandResult {
				return i.cd(sess, []string{vpath.Root})
			},
			needsRoot: true,
		},
		"exit": {run: (*Interpreter).exit},
		"help": {run: (*Interpreter).help},
		"pwd":  {run: (*Interpreter).pwd},
	}
	return i
}

// Execute interprets one command line. Command failures are reported inside the
// result; the returned error is reserved for domain.ErrNoSandbox.
func (i *Interpreter) Execute(ctx context.Context, sess domain.Session, line string) (domain.CommandResult, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return domain.CommandResult{}, nil
	}
	verb, args := fields[0], fields[1:]

	start := time.Now()
	var res domain.CommandResult

	h, ok := i.handlers[verb]
	switch {
	case !ok:
		res.Fail(domain.NewCommandError(domain.ErrUnknownCommand, nil, msgUnknownCommand(verb)))
	case h.needsRoot && !sess.Ready():
		return domain.CommandResult{Verb: verb}, domain.ErrNoSandbox
	default:
		res = h.run(i, sess, args)
	}
	res.Verb = verb

	i.emit(ctx, sess, res, time.Since(start))
	return res, nil
}

// resolve maps a user supplied path to its virtual and host forms.
func (i *Interpreter) resolve(sess domain.Session, raw string) (string, string, error) {
	virtual, err := vpath.Resolve(raw, sess.CurrentDir, i.policy)
	if err != nil {
		return "", "", err
	}
	hostPath, err := vpath.ResolveReal(virtual, sess.RootDir)
	if err != nil {
		return virtual, "", err
	}
	return virtual, hostPath, nil
}

// notFound classifies a failed lookup. Escapes read exactly like missing paths
// but keep vpath.ErrEscape as the cause.
func (i *Interpreter) notFound(verb, raw string, cause error, message string) *domain.CommandError {
	if cause != nil {
		i.logger.Debug("Path rejected", "verb", verb, "path", raw, "err", cause)
	}
	return domain.NewCommandError(domain.ErrNotFound, cause, message)
}

func (i *Interpreter) hint(res *domain.CommandResult, text string) {
	if i.hints {
		res.Hint(text)
	}
}

func (i *Interpreter) emit(ctx context.Context, sess domain.Session, res domain.CommandResult, elapsed time.Duration) {
	if i.hooks.OnCommand == nil {
		return
	}
	dir := sess.CurrentDir
	if res.Dir != "" {
		dir = res.Dir
	}
	i.hooks.OnCommand(ctx, &domain.CommandEvent{
		Timestamp: time.Now(),
		SessionID: sess.ID,
		Verb:      res.Verb,
		Dir:       dir,
		Duration:  elapsed,
		Outcome:   domain.Outcome(res.Err),
		Err:       res.Err,
	})
}

// restArg joins the remaining tokens so names containing spaces survive
// whitespace tokenization. def is returned when there are none.
func restArg(args []string, def string) string {
	if len(args) == 0 {
		return def
	}
	return strings.Join(args, " ")
}
