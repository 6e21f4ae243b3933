package dotdoctor

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/arthur-debert/dotdoctor/pkg/errors"
	"github.com/arthur-debert/dotdoctor/pkg/types"
)

// ExitError carries the exit status of a report that is not clean. The
// report has already been printed, so it has no message.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps the error returned by the root command to a process
// status. Errors other than ExitError are fatal: their message is written
// to stderr as a single line.
func ExitCode(err error, stderr io.Writer) int {
	if err == nil {
		return int(types.ExitOK)
	}
	var exitErr *ExitError
	if stderrors.As(err, &exitErr) {
		return exitErr.Code
	}
	fmt.Fprintf(stderr, MsgErrorFormat, errors.Message(err))
	return int(types.ExitFailures)
}
