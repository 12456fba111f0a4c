package runner

import (
	"fmt"
	"os"
)

// State is the lifecycle state of one execution.
type State int

const (
	// StateSpawned indicates the process was started but not yet registered.
	StateSpawned State = iota
	// StateRunning indicates the process is registered and being supervised.
	StateRunning
	// StateCompleted indicates the process exited on its own, including a
	// crash or a signal from outside the registry.
	StateCompleted
	// StateKilled indicates the process was terminated by a registry
	// KillAll that this execution did not issue.
	StateKilled
	// StateTimedOut indicates the process group was killed because the
	// timeout elapsed.
	StateTimedOut
	// StateCancelled indicates the process group was killed because the
	// context was cancelled.
	StateCancelled
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateSpawned:
		return "spawned"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateKilled:
		return "killed"
	case StateTimedOut:
		return "timed out"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Terminal reports whether s is a final state.
func (s State) Terminal() bool {
	return s >= StateCompleted
}

// ExitStatus is the raw exit status of a process.
type ExitStatus struct {
	// Code is the exit code, or -1 if the process did not exit normally.
	Code int

	// Signal is the terminating signal, or nil.
	Signal os.Signal
}

// String describes the status the way error messages present it.
func (s ExitStatus) String() string {
	if s.Signal != nil {
		return "signal " + s.Signal.String()
	}
	if s.Code < 0 {
		return "no exit status"
	}
	return fmt.Sprintf("exit code %d", s.Code)
}

// CmdResult represents the result of a command execution.
type CmdResult struct {
	// Stdout is the captured, redacted standard output.
	Stdout string

	// Stderr is the captured, redacted standard error.
	Stderr string

	// Combined holds stdout and stderr lines in arrival order.
	Combined string

	// Status is the raw exit status.
	Status ExitStatus

	// State is the terminal state of the execution.
	State State
}

// ExitCode is shorthand for Status.Code.
func (r *CmdResult) ExitCode() int {
	return r.Status.Code
}

// Success reports whether the process completed with exit code 0.
func (r *CmdResult) Success() bool {
	return r.State == StateCompleted && r.Status.Code == 0
}
