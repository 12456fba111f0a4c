//go:build windows

package runner

import (
	"os"
	osexec "os/exec"
	"syscall"

	"golang.org/x/sys/windows"
)

// setProcessGroup starts the child in a new process group. Tree-wide
// termination is done by the registry with taskkill /T.
func setProcessGroup(cmd *osexec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: windows.CREATE_NEW_PROCESS_GROUP,
	}
}

// exitSignal always returns nil; Windows processes do not die by signal.
func exitSignal(_ *os.ProcessState) os.Signal {
	return nil
}
