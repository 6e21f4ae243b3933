// Package runner executes the read-only subprocesses dotdoctor relies on
// (the symlink manager in simulation mode, tool version queries, the
// linter). Every invocation is bounded by the caller's context; a process
// still running at the deadline is killed and reported as a timeout.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"os/exec"
	"time"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/logging"
)

// WaitDelay bounds how long Run waits for the output pipes to close once
// the process was killed or exited
const WaitDelay = 500 * time.Millisecond

// Result is the captured outcome of a finished process
type Result struct {
	// Output is stdout and stderr combined, in the order they were written
	Output   string
	ExitCode int
	Duration time.Duration
}

// Success reports whether the process exited with status 0
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Runner abstracts subprocess execution for testability.
//
// Run returns an error only when the process could not be started or did
// not finish in time. A non-zero exit status is not an error; it is
// reported through Result.ExitCode.
type Runner interface {
	LookPath(name string) (string, error)
	Run(ctx context.Context, dir, name string, args ...string) (Result, error)
}

// ExecRunner runs real processes through os/exec
type ExecRunner struct{}

// New returns a Runner backed by os/exec
func New() *ExecRunner {
	return &ExecRunner{}
}

// LookPath resolves name on the search path
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrSubprocessUnavailable, "%s is not installed", name)
	}
	return path, nil
}

// Run executes name with args in dir and captures its combined output
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) (Result, error) {
	logger := logging.GetLogger("runner")
	logging.LogCommand(name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	// A grandchild holding the output pipe must not outlive the deadline
	killProcessGroup(cmd)
	cmd.WaitDelay = WaitDelay

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	start := time.Now()
	err := cmd.Run()
	result := Result{
		Output:   output.String(),
		Duration: time.Since(start),
	}

	if ctxErr := ctx.Err(); ctxErr != nil && stderrors.Is(ctxErr, context.DeadlineExceeded) {
		logger.Debug().Str("command", name).Dur("duration", result.Duration).Msg("Command timed out")
		return result, errors.Newf(errors.ErrSubprocessTimeout, "%s timed out after %s", name, result.Duration.Round(time.Millisecond)).
			WithDetail("command", name)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if stderrors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
			logger.Debug().
				Str("command", name).
				Int("exitCode", result.ExitCode).
				Dur("duration", result.Duration).
				Msg("Command exited with non-zero status")
			return result, nil
		}
		if stderrors.Is(err, exec.ErrNotFound) {
			return result, errors.Wrapf(err, errors.ErrSubprocessUnavailable, "%s is not installed", name)
		}
		return result, errors.Wrapf(err, errors.ErrSubprocessFailed, "failed to run %s", name)
	}

	logger.Trace().
		Str("command", name).
		Dur("duration", result.Duration).
		Str("output", result.Output).
		Msg("Command finished")
	return result, nil
}

// IsTimeout reports whether err is a subprocess timeout
func IsTimeout(err error) bool {
	return errors.IsErrorCode(err, errors.ErrSubprocessTimeout)
}

// IsUnavailable reports whether err means the executable does not exist
func IsUnavailable(err error) bool {
	return errors.IsErrorCode(err, errors.ErrSubprocessUnavailable)
}
