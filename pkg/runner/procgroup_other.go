//go:build !unix

package runner

import "os/exec"

// killProcessGroup keeps the default cancellation, which kills the direct
// child only; WaitDelay still bounds the wait for its output
func killProcessGroup(cmd *exec.Cmd) {}
