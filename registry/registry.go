package registry

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Handle identifies a running process and its process group.
type Handle struct {
	// ID correlates log lines for one execution.
	ID uuid.UUID

	// PID is the platform process identifier.
	PID int

	// PGID is the process group identifier. It equals PID for processes
	// started in their own group.
	PGID int

	// Started is when the process was spawned.
	Started time.Time
}

// Registry is a table of running process groups.
type Registry struct {
	mu      sync.Mutex
	entries map[int]entry
	logger  *slog.Logger
}

type entry struct {
	handle Handle

	// signaled is set by KillAll before the signal is sent and cleared
	// again if delivery fails.
	signaled bool
}

var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used to report signal delivery failures.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{
		entries: make(map[int]entry),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register records h, replacing any previous entry with the same PID.
func (r *Registry) Register(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[h.PID] = entry{handle: h}
}

// Deregister removes h and reports whether KillAll signaled it while it was
// registered. An entry registered under the same PID by a different
// execution is left alone, and removing an unknown handle is a no-op.
func (r *Registry) Deregister(h Handle) (signaled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[h.PID]
	if !ok || e.handle.ID != h.ID {
		return false
	}
	delete(r.entries, h.PID)
	return e.signaled
}

// Contains reports whether pid is registered.
func (r *Registry) Contains(pid int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.entries[pid]
	return ok
}

// Len returns the number of registered processes.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Snapshot returns the registered handles ordered by PID.
func (r *Registry) Snapshot() []Handle {
	r.mu.Lock()
	handles := make([]Handle, 0, len(r.entries))
	for _, e := range r.entries {
		handles = append(handles, e.handle)
	}
	r.mu.Unlock()

	sortByPID(handles)
	return handles
}

func sortByPID(handles []Handle) {
	sort.Slice(handles, func(i, j int) bool {
		return handles[i].PID < handles[j].PID
	})
}

// KillAll sends sig to the process group of every registered process and
// returns how many groups were signaled.
//
// Delivery is best-effort. A group that has already exited, or cannot be
// signaled, is logged and skipped. The signal is passed through unchanged;
// on Windows every group is terminated forcefully regardless of sig.
//
// Each handle is marked before its signal is sent, so the execution that
// owns it can tell a KillAll apart from a crash when it deregisters.
func (r *Registry) KillAll(sig os.Signal) int {
	signaled := 0
	for _, h := range r.mark() {
		if err := signalGroup(h, sig); err != nil {
			r.unmark(h)
			r.logger.LogAttrs(context.Background(), slog.LevelDebug, "failed to signal process group",
				slog.Int("pid", h.PID),
				slog.Int("pgid", h.PGID),
				slog.String("signal", sigName(sig)),
				slog.String("error", err.Error()),
			)
			continue
		}
		signaled++
	}
	return signaled
}

// mark flags every entry as signaled and returns their handles.
func (r *Registry) mark() []Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	handles := make([]Handle, 0, len(r.entries))
	for pid, e := range r.entries {
		e.signaled = true
		r.entries[pid] = e
		handles = append(handles, e.handle)
	}
	sortByPID(handles)
	return handles
}

func (r *Registry) unmark(h Handle) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.entries[h.PID]; ok && e.handle.ID == h.ID {
		e.signaled = false
		r.entries[h.PID] = e
	}
}

// Signal sends sig to the process group described by h.
func Signal(h Handle, sig os.Signal) error {
	return signalGroup(h, sig)
}

func sigName(sig os.Signal) string {
	if sig == nil {
		return "<nil>"
	}
	return sig.String()
}
