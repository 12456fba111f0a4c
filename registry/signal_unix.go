//go:build !windows

package registry

import (
	"fmt"
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

// signalGroup delivers sig to every process in the group.
func signalGroup(h Handle, sig os.Signal) error {
	// kill(2) with 0 or -1 would hit our own group or every process we own.
	if h.PGID <= 1 {
		return fmt.Errorf("invalid process group %d", h.PGID)
	}

	s, ok := sig.(syscall.Signal)
	if !ok {
		return fmt.Errorf("unsupported signal type %T", sig)
	}

	// Negative PGID targets the full process group.
	return unix.Kill(-h.PGID, s)
}
