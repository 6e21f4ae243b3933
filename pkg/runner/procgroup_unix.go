//go:build unix

package runner

import (
	stderrors "errors"
	"os"
	"os/exec"
	"syscall"
)

// killProcessGroup starts cmd in its own process group and makes context
// cancellation kill the whole group, so children of shell shims die too
func killProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	cmd.Cancel = func() error {
		err := syscall.Kill(-cmd.Process.Pid, syscall.SIGKILL)
		if stderrors.Is(err, syscall.ESRCH) {
			return os.ErrProcessDone
		}
		return err
	}
}
