package runner

import (
	"context"
	"errors"
	"time"
)

// stopReason says why the controller asked for the process to be stopped.
type stopReason int

const (
	stopNone stopReason = iota
	stopDeadline
	stopCancelled
)

// String returns the reason name used in logs.
func (r stopReason) String() string {
	switch r {
	case stopDeadline:
		return "deadline_elapsed"
	case stopCancelled:
		return "externally_cancelled"
	default:
		return "none"
	}
}

// state maps the reason to the terminal state it produces.
func (r stopReason) state() State {
	switch r {
	case stopDeadline:
		return StateTimedOut
	case stopCancelled:
		return StateCancelled
	default:
		return StateCompleted
	}
}

// controller merges an optional timeout and an optional context into the
// channels the supervisor selects on. Unconfigured sources yield nil
// channels, which never fire.
type controller struct {
	ctx   context.Context
	timer *time.Timer
}

func newController(ctx context.Context, timeout time.Duration) *controller {
	c := &controller{ctx: ctx}
	if timeout > 0 {
		c.timer = time.NewTimer(timeout)
	}
	return c
}

// deadline fires when the configured timeout elapses.
func (c *controller) deadline() <-chan time.Time {
	if c.timer == nil {
		return nil
	}
	return c.timer.C
}

// done fires when the context is cancelled or its own deadline passes.
func (c *controller) done() <-chan struct{} {
	if c.ctx == nil {
		return nil
	}
	return c.ctx.Done()
}

// contextReason classifies a fired context. A context whose own deadline
// passed counts as a timeout.
func (c *controller) contextReason() (stopReason, error) {
	err := c.ctx.Err()
	if errors.Is(err, context.DeadlineExceeded) {
		return stopDeadline, err
	}
	return stopCancelled, err
}

// stop releases the timer.
func (c *controller) stop() {
	if c.timer != nil {
		c.timer.Stop()
	}
}

// outcome is the winner of the race between process exit and a stop.
type outcome struct {
	reason stopReason

	// cause is the context error behind a stop, if any.
	cause error

	// waitErr is the error from waiting on a process that exited on its own.
	waitErr error
}

// wait blocks until the process exits or a stop is requested, whichever
// happens first. The losing branches are simply abandoned.
func (c *controller) wait(exited <-chan error) outcome {
	select {
	case err := <-exited:
		return outcome{reason: stopNone, waitErr: err}
	case <-c.deadline():
		return outcome{reason: stopDeadline}
	case <-c.done():
		reason, cause := c.contextReason()
		return outcome{reason: reason, cause: cause}
	}
}
