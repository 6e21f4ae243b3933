// Package runnertest provides a scripted runner.Runner for tests that must
// not spawn real processes.
package runnertest

import (
	"context"
	"strings"
	"sync"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/runner"
)

// Response is the scripted reply to one command line
type Response struct {
	Output   string
	ExitCode int
	Err      error
}

// Call records one Run invocation
type Call struct {
	Dir  string
	Name string
	Args []string
}

// Line returns the call as a single space-joined command line
func (c Call) Line() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Fake is a runner.Runner that answers from a table keyed by command line.
// Executables are "installed" when they appear in Installed or as the
// first word of any Responses key.
type Fake struct {
	Installed map[string]bool
	// Responses maps "name arg1 arg2" to the reply
	Responses map[string]Response
	// Block makes Run wait for context cancellation for these command lines
	Block map[string]bool

	mu    sync.Mutex
	calls []Call
}

// NewFake returns an empty Fake
func NewFake() *Fake {
	return &Fake{
		Installed: map[string]bool{},
		Responses: map[string]Response{},
		Block:     map[string]bool{},
	}
}

// On scripts the reply for a command line and marks its executable installed
func (f *Fake) On(line string, resp Response) *Fake {
	f.Responses[line] = resp
	f.Installed[strings.Fields(line)[0]] = true
	return f
}

// LookPath implements runner.Runner
func (f *Fake) LookPath(name string) (string, error) {
	if f.Installed[name] {
		return "/usr/bin/" + name, nil
	}
	return "", errors.Newf(errors.ErrSubprocessUnavailable, "%s is not installed", name)
}

// Run implements runner.Runner
func (f *Fake) Run(ctx context.Context, dir, name string, args ...string) (runner.Result, error) {
	call := Call{Dir: dir, Name: name, Args: append([]string(nil), args...)}
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()

	if !f.Installed[name] {
		return runner.Result{}, errors.Newf(errors.ErrSubprocessUnavailable, "%s is not installed", name)
	}

	line := call.Line()
	if f.Block[line] {
		<-ctx.Done()
		return runner.Result{}, errors.Newf(errors.ErrSubprocessTimeout, "%s timed out", name)
	}

	resp, ok := f.Responses[line]
	if !ok {
		return runner.Result{}, nil
	}
	return runner.Result{Output: resp.Output, ExitCode: resp.ExitCode}, resp.Err
}

// Calls returns a copy of the recorded invocations
func (f *Fake) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Call(nil), f.calls...)
}
