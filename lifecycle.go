package runner

import "log/slog"

// lifecycle tracks the state of one execution from spawn to its terminal
// state. Transitions only move forward and a terminal state is final.
type lifecycle struct {
	state State
	log   *slog.Logger
}

// newLifecycle starts tracking a process that has just been spawned.
func newLifecycle(log *slog.Logger) *lifecycle {
	l := &lifecycle{state: StateSpawned, log: log}
	log.Debug("process spawned")
	return l
}

// advance moves to the given state. It reports false and keeps the current
// state when the transition would go backwards or leave a terminal state.
func (l *lifecycle) advance(to State) bool {
	if l.state.Terminal() || to <= l.state {
		l.log.Warn("ignoring invalid state transition", "from", l.state.String(), "to", to.String())
		return false
	}

	l.log.Debug("state changed", "from", l.state.String(), "to", to.String())
	l.state = to
	return true
}
