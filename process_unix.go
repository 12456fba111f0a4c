//go:build !windows

package runner

import (
	"os"
	osexec "os/exec"
	"syscall"
)

// setProcessGroup starts the child as the leader of a new process group so
// a signal to the group reaches every descendant it spawns.
func setProcessGroup(cmd *osexec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// exitSignal returns the signal that terminated the process, or nil.
func exitSignal(ps *os.ProcessState) os.Signal {
	ws, ok := ps.Sys().(syscall.WaitStatus)
	if !ok || !ws.Signaled() {
		return nil
	}
	return ws.Signal()
}
