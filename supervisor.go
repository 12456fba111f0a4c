package runner

import (
	"context"
	"io"
	"log/slog"
	"os"
	osexec "os/exec"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/runner/redact"
	"github.com/jmgilman/go/runner/registry"
)

const (
	// DefaultKillGrace bounds the wait for a killed process group to exit.
	DefaultKillGrace = 5 * time.Second

	// DefaultDrainTimeout bounds the wait for output pipes to reach EOF
	// after the process has exited.
	DefaultDrainTimeout = 2 * time.Second
)

// Supervisor runs commands in their own process group, captures their
// output, and kills the whole group on timeout or cancellation.
//
// A Supervisor holds no per-execution state and is safe for concurrent use.
type Supervisor struct {
	registry     *registry.Registry
	logger       *slog.Logger
	killGrace    time.Duration
	drainTimeout time.Duration
}

// SupervisorOption configures a Supervisor.
type SupervisorOption func(*Supervisor)

// WithRegistry sets the registry running processes are recorded in.
// Defaults to registry.Default().
func WithRegistry(r *registry.Registry) SupervisorOption {
	return func(s *Supervisor) {
		if r != nil {
			s.registry = r
		}
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(l *slog.Logger) SupervisorOption {
	return func(s *Supervisor) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKillGrace sets how long to wait for a killed process group to exit.
func WithKillGrace(d time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		if d > 0 {
			s.killGrace = d
		}
	}
}

// WithDrainTimeout sets how long to wait for output to drain after exit.
func WithDrainTimeout(d time.Duration) SupervisorOption {
	return func(s *Supervisor) {
		if d > 0 {
			s.drainTimeout = d
		}
	}
}

// NewSupervisor creates a Supervisor.
func NewSupervisor(opts ...SupervisorOption) *Supervisor {
	s := &Supervisor{
		registry:     registry.Default(),
		logger:       slog.New(slog.DiscardHandler),
		killGrace:    DefaultKillGrace,
		drainTimeout: DefaultDrainTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Registry returns the registry this supervisor records processes in.
func (s *Supervisor) Registry() *registry.Registry {
	return s.registry
}

// KillAll sends sig to every process group in the default registry and
// returns how many were signaled. It is meant for application shutdown.
func KillAll(sig os.Signal) int {
	return registry.Default().KillAll(sig)
}

// Run executes spec and waits for it to finish.
//
// The process is killed along with its process group when spec.Timeout
// elapses or ctx is done. Run returns the captured result together with a
// non-nil *ExecError when the command could not be started, exited with a
// non-zero code (unless spec.AllowNonZero is set), timed out, or was
// cancelled. Output captured after a stop is best-effort.
func (s *Supervisor) Run(ctx context.Context, spec CommandSpec) (*CmdResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if spec.Program == "" {
		return nil, newExecError(spec, nil, CodeInvalidInput, osexec.ErrNotFound, "no program given")
	}
	spec.Args = append([]string(nil), spec.Args...)
	if err := ctx.Err(); err != nil {
		ctl := controller{ctx: ctx}
		reason, cause := ctl.contextReason()
		return assemble(spec, &CmdResult{Status: ExitStatus{Code: -1}, State: reason.state()}, cause)
	}

	matcher := redact.New(spec.Redact)
	log := s.logger.With("cmd", matcher.Apply(spec.String()))

	cmd := osexec.Command(spec.Program, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = spec.environ()
	setProcessGroup(cmd)

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, newExecError(spec, nil, CodeIO, err, "failed to create stdout pipe for %s", spec.Program)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		closeAll(stdoutR, stdoutW)
		return nil, newExecError(spec, nil, CodeIO, err, "failed to create stderr pipe for %s", spec.Program)
	}
	defer closeAll(stdoutR, stderrR)

	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	var stdin io.WriteCloser
	if spec.Stdin != nil {
		stdin, err = cmd.StdinPipe()
		if err != nil {
			closeAll(stdoutW, stderrW)
			return nil, newExecError(spec, nil, CodeIO, err, "failed to create stdin pipe for %s", spec.Program)
		}
	}

	log.Debug("starting process")
	err = cmd.Start()
	// The child has its own copies; ours must be closed for the pumps to
	// ever see EOF.
	closeAll(stdoutW, stderrW)
	if err != nil {
		return nil, newExecError(spec, nil, CodeIO, err, "failed to start %s", spec.Program)
	}

	h := registry.Handle{
		ID:      uuid.New(),
		PID:     cmd.Process.Pid,
		PGID:    cmd.Process.Pid,
		Started: time.Now(),
	}
	log = log.With("id", h.ID.String(), "pid", h.PID)

	life := newLifecycle(log)

	s.registry.Register(h)
	var (
		once       sync.Once
		killedByID bool
	)
	deregister := func() {
		once.Do(func() {
			killedByID = s.registry.Deregister(h)
			log.Debug("process deregistered")
		})
	}
	defer deregister()
	life.advance(StateRunning)

	combined := &combinedBuffer{}
	stdoutCap := newLineCapture(StreamStdout, matcher, combined, spec.Observer, spec.Stdout)
	stderrCap := newLineCapture(StreamStderr, matcher, combined, spec.Observer, spec.Stderr)

	var pumps errgroup.Group
	pumps.Go(func() error { return stdoutCap.pump(stdoutR) })
	pumps.Go(func() error { return stderrCap.pump(stderrR) })

	var stdinDone chan struct{}
	if stdin != nil {
		stdinDone = make(chan struct{})
		go func() {
			defer close(stdinDone)
			feedStdin(log, stdin, spec.Stdin)
		}()
	}

	exited := make(chan error, 1)
	go func() { exited <- cmd.Wait() }()

	ctl := newController(ctx, spec.Timeout)
	defer ctl.stop()

	out := ctl.wait(exited)
	waited := out.reason == stopNone
	if !waited {
		select {
		case err := <-exited:
			// The process finished before the stop could act on it.
			log.Debug("stop requested after exit, ignoring", "reason", out.reason.String())
			out = outcome{reason: stopNone, waitErr: err}
			waited = true
		default:
			log.Debug("stopping process group", "reason", out.reason.String())
			waited = s.kill(log, h, cmd.Process, exited)
		}
	}

	deregister()

	pumpErr := s.drain(log, &pumps, stdoutR, stderrR)
	abandonStdin(log, stdinDone)

	result := &CmdResult{
		Stdout:   stdoutCap.String(),
		Stderr:   stderrCap.String(),
		Combined: combined.String(),
		Status:   ExitStatus{Code: -1},
	}
	// ProcessState is only safe to read once Wait has returned.
	if waited && cmd.ProcessState != nil {
		result.Status = exitStatus(cmd.ProcessState)
	}

	final := out.reason.state()
	// A KillAll from outside this execution shows up as a signal death on
	// unix and as a failing exit code from taskkill on windows. Any other
	// signal death is the process's own failure.
	if out.reason == stopNone && killedByID && (result.Status.Signal != nil || result.Status.Code != 0) {
		final = StateKilled
	}
	life.advance(final)
	result.State = life.state

	if out.reason == stopNone {
		if cmd.ProcessState == nil {
			return result, newExecError(spec, result, CodeIO, out.waitErr, "failed to wait for %s", spec.Program)
		}
		if pumpErr != nil {
			return result, newExecError(spec, result, CodeIO, pumpErr, "failed to read output of %s", spec.Program)
		}
	}

	log.Debug("process finished", "state", result.State.String(), "status", result.Status.String())

	return assemble(spec, result, out.cause)
}

// kill terminates the process group and waits up to the kill grace for the
// exit to be confirmed. It reports whether the exit was observed.
func (s *Supervisor) kill(log *slog.Logger, h registry.Handle, p *os.Process, exited <-chan error) bool {
	if err := registry.Signal(h, os.Kill); err != nil {
		log.Warn("failed to kill process group, killing process only", "error", err)
		if err := p.Kill(); err != nil {
			log.Warn("failed to kill process", "error", err)
		}
	}

	timer := time.NewTimer(s.killGrace)
	defer timer.Stop()

	select {
	case <-exited:
		return true
	case <-timer.C:
		log.Warn("process did not exit after kill", "grace", s.killGrace.String())
		return false
	}
}

// drain waits for both pumps to finish. If the pipes are still open when
// the drain timeout passes, typically because a detached descendant holds
// them, the read ends are closed to unblock the pumps.
func (s *Supervisor) drain(log *slog.Logger, pumps *errgroup.Group, readers ...*os.File) error {
	done := make(chan error, 1)
	go func() { done <- pumps.Wait() }()

	timer := time.NewTimer(s.drainTimeout)
	defer timer.Stop()

	select {
	case err := <-done:
		return err
	case <-timer.C:
	}

	log.Debug("output still open after exit, closing pipes", "timeout", s.drainTimeout.String())
	closeAll(readers...)
	return <-done
}

// abandonStdin stops tracking the stdin writer once the process is gone.
// The pipe's write end is closed by Wait, so a writer that is still running
// is blocked on its source and returns when the source does.
func abandonStdin(log *slog.Logger, done <-chan struct{}) {
	if done == nil {
		return
	}

	select {
	case <-done:
	default:
		log.Debug("stdin source still open after exit, abandoning writer")
	}
}

// feedStdin copies r to the child's stdin and closes it. Write failures are
// expected when the child exits without reading its input.
func feedStdin(log *slog.Logger, w io.WriteCloser, r io.Reader) {
	if _, err := io.Copy(w, r); err != nil {
		log.Debug("failed to write stdin", "error", err)
	}
	_ = w.Close()
}

func exitStatus(ps *os.ProcessState) ExitStatus {
	return ExitStatus{
		Code:   ps.ExitCode(),
		Signal: exitSignal(ps),
	}
}

func closeAll(files ...*os.File) {
	for _, f := range files {
		_ = f.Close()
	}
}
