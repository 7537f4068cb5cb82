package rcd

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Runner executes an external command on behalf of the wrapper. The
// production implementation spawns a process; tests inject a recording
// fake so dispatch decisions can be verified without forking.
type Runner interface {
	// Run executes argv with extraEnv appended to the inherited
	// environment. It returns the command's exit status. err is non-nil
	// only when the command could not be run at all or was cut short by
	// the context; a clean non-zero exit is not an error.
	Run(ctx context.Context, argv []string, extraEnv []string) (int, error)
}

// ExecRunner runs commands with os/exec. Streams default to the wrapper
// process's own, matching the inherited-streams contract the rc framework
// expects from service scripts.
type ExecRunner struct {
	// Stdin is the child's standard input (default os.Stdin)
	Stdin io.Reader
	// Stdout is the child's standard output (default os.Stdout)
	Stdout io.Writer
	// Stderr is the child's standard error (default os.Stderr)
	Stderr io.Writer
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, argv []string, extraEnv []string) (int, error) {
	if len(argv) == 0 {
		return ExitFailure, ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Env = append(os.Environ(), extraEnv...)

	cmd.Stdin = r.Stdin
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	cmd.Stdout = r.Stdout
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	cmd.Stderr = r.Stderr
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	err := cmd.Run()
	if err == nil {
		return ExitOK, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return exitErr.ExitCode(), ctxErr
		}
		return exitErr.ExitCode(), nil
	}

	return ExitFailure, err
}
