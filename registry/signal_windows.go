//go:build windows

package registry

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

// signalGroup forcefully terminates the process tree rooted at h.PID.
// Windows has no group signals, so sig is ignored.
func signalGroup(h Handle, _ os.Signal) error {
	if h.PID <= 0 {
		return fmt.Errorf("invalid process id %d", h.PID)
	}

	cmd := exec.Command("taskkill", "/F", "/T", "/PID", strconv.Itoa(h.PID))
	cmd.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("taskkill %d: %w: %s", h.PID, err, out)
	}
	return nil
}
