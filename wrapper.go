package rcd

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"
)

// Wrapper translates supervisor directives into ioc invocations. It owns
// no state beyond its options; every Run loads the configuration fresh,
// checks the enable flag, and performs at most the commands the directive
// requires.
type Wrapper struct {
	// ConfPath is the rc configuration file consulted on every Run
	ConfPath string

	// ExecPath is the path to the ioc binary
	ExecPath string

	// Timeout bounds each external command (0 disables the bound)
	Timeout time.Duration

	// Stdout receives the per-action progress lines
	Stdout io.Writer

	runner Runner
}

// Option configures a Wrapper
type Option func(*Wrapper)

// WithConfPath sets the rc configuration file path
func WithConfPath(path string) Option {
	return func(w *Wrapper) {
		w.ConfPath = path
	}
}

// WithExecPath sets the path to the ioc binary
func WithExecPath(path string) Option {
	return func(w *Wrapper) {
		w.ExecPath = path
	}
}

// WithTimeout sets the per-command timeout
func WithTimeout(d time.Duration) Option {
	return func(w *Wrapper) {
		w.Timeout = d
	}
}

// WithStdout sets the writer for progress lines
func WithStdout(out io.Writer) Option {
	return func(w *Wrapper) {
		w.Stdout = out
	}
}

// WithRunner sets the command runner
func WithRunner(r Runner) Option {
	return func(w *Wrapper) {
		w.runner = r
	}
}

// New creates a Wrapper with default settings and applies any provided options
func New(opts ...Option) *Wrapper {
	w := &Wrapper{
		ConfPath: DefaultConfPath,
		ExecPath: DefaultExecPath,
		Stdout:   os.Stdout,
		runner:   &ExecRunner{},
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// invocation describes one external command a directive requires
type invocation struct {
	// argv is the full command line
	argv []string
	// env holds environment assignments appended for the command
	env []string
	// note is the progress line printed before the command runs
	note string
}

// plan maps a loaded configuration and an acting directive to the external
// commands to run, in order. It performs no I/O so the dispatch rules stay
// testable without spawning processes. A disabled service plans nothing.
func plan(cfg Config, d Directive, execPath string) []invocation {
	if !cfg.Enable {
		return nil
	}

	langEnv := []string{LangEnv + "=" + cfg.Lang}
	start := invocation{
		argv: []string{execPath, directiveStartStr, RCFlag},
		env:  langEnv,
		note: "Starting ioc jails.",
	}
	stop := invocation{
		argv: []string{execPath, directiveStopStr, RCFlag},
		env:  langEnv,
		note: "Stopping ioc jails.",
	}

	switch d {
	case DirectiveStart:
		return []invocation{start}
	case DirectiveStop:
		return []invocation{stop}
	case DirectiveRestart:
		return []invocation{stop, start}
	default:
		return nil
	}
}

// Run loads the configuration and executes a single directive. The int
// result is the exit status the wrapper process should report to its
// supervisor; it equals the external command's status whenever one runs.
func (w *Wrapper) Run(ctx context.Context, d Directive) (int, error) {
	cfg, err := LoadConfig(w.ConfPath)
	if err != nil {
		return ExitFailure, &DirectiveError{Directive: d, Path: w.ConfPath, Err: err}
	}
	return w.RunWithConfig(ctx, cfg, d)
}

// RunWithConfig executes a single directive against an already-loaded
// configuration.
func (w *Wrapper) RunWithConfig(ctx context.Context, cfg Config, d Directive) (int, error) {
	switch d {
	case DirectiveStart, DirectiveStop, DirectiveRestart:
		return w.act(ctx, cfg, d)

	case DirectiveStatus:
		if cfg.Enable {
			fmt.Fprintf(w.Stdout, "%s is enabled\n", ServiceName)
			return ExitOK, nil
		}
		fmt.Fprintf(w.Stdout, "%s is disabled\n", ServiceName)
		return ExitNotRunning, nil

	case DirectiveRcvar:
		value := "NO"
		if cfg.Enable {
			value = "YES"
		}
		fmt.Fprintf(w.Stdout, "%s=\"%s\"\n", KeyEnable, value)
		return ExitOK, nil

	case DirectiveEnable:
		if err := SetEnabled(w.ConfPath, true); err != nil {
			return ExitFailure, &DirectiveError{Directive: d, Path: w.ConfPath, Err: err}
		}
		return ExitOK, nil

	case DirectiveDisable:
		if err := SetEnabled(w.ConfPath, false); err != nil {
			return ExitFailure, &DirectiveError{Directive: d, Path: w.ConfPath, Err: err}
		}
		return ExitOK, nil

	default:
		return ExitFailure, &DirectiveError{Directive: d, Path: w.ConfPath, Err: ErrUnknownDirective}
	}
}

// act runs the planned commands for start/stop/restart. A disabled service
// is a silent success; a failing command short-circuits the rest and its
// status is passed through untouched.
func (w *Wrapper) act(ctx context.Context, cfg Config, d Directive) (int, error) {
	for _, inv := range plan(cfg, d, w.ExecPath) {
		code, err := w.invoke(ctx, inv)
		if err != nil {
			return code, &DirectiveError{Directive: d, Path: inv.argv[0], Err: err}
		}
		if code != ExitOK {
			return code, nil
		}
	}
	return ExitOK, nil
}

// invoke prints the progress line and runs one command, bounded by the
// configured timeout
func (w *Wrapper) invoke(ctx context.Context, inv invocation) (int, error) {
	if w.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, w.Timeout)
		defer cancel()
	}

	fmt.Fprintln(w.Stdout, inv.note)
	return w.runner.Run(ctx, inv.argv, inv.env)
}
