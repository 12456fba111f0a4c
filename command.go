package runner

import (
	"context"
	"io"
	"os"
	osexec "os/exec"
	"strings"
	"time"
)

// Command is the concrete implementation of the Executor interface.
// It builds a CommandSpec from its settings and runs it through a
// Supervisor.
type Command struct {
	config        *config
	supervisor    *Supervisor
	ctx           context.Context
	stdout        io.Writer
	stderr        io.Writer
	stdin         io.Reader
	globalTimeout string
	timeout       string
}

// New creates a new Command with the given options.
// Options set global defaults that can be overridden by local settings.
func New(opts ...Option) *Command {
	cmd := &Command{
		config: newConfig(),
		ctx:    context.Background(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	if cmd.supervisor == nil {
		cmd.supervisor = NewSupervisor()
	}

	return cmd
}

// WithEnv sets environment variables for the command.
func (c *Command) WithEnv(env map[string]string) Executor {
	for k, v := range env {
		c.config.localEnv[k] = v
	}
	return c
}

// WithDir sets the working directory for the command.
func (c *Command) WithDir(dir string) Executor {
	c.config.localDir = dir
	return c
}

// WithContext sets the context for the command.
func (c *Command) WithContext(ctx context.Context) Executor {
	c.ctx = ctx
	return c
}

// WithDisableColors disables color output.
func (c *Command) WithDisableColors() Executor {
	val := true
	c.config.localDisableColors = &val
	return c
}

// WithTimeout sets a timeout for the command.
func (c *Command) WithTimeout(timeout string) Executor {
	c.timeout = timeout
	return c
}

// WithInheritEnv keeps the parent environment when variables are set.
// Without it, a run that sets variables sees only those; a run that sets
// none inherits the parent environment.
func (c *Command) WithInheritEnv() Executor {
	val := true
	c.config.localInheritEnv = &val
	return c
}

// WithStdout sets the stdout writer.
func (c *Command) WithStdout(w io.Writer) Executor {
	c.stdout = w
	return c
}

// WithStderr sets the stderr writer.
func (c *Command) WithStderr(w io.Writer) Executor {
	c.stderr = w
	return c
}

// WithPassthrough enables output passthrough.
func (c *Command) WithPassthrough() Executor {
	val := true
	c.config.localPassthrough = &val
	return c
}

// WithStdin sets the standard input source.
func (c *Command) WithStdin(r io.Reader) Executor {
	c.stdin = r
	return c
}

// WithStdinString sets the standard input to a fixed string.
func (c *Command) WithStdinString(input string) Executor {
	c.stdin = strings.NewReader(input)
	return c
}

// WithRedact adds secrets to redact from the next run's output.
func (c *Command) WithRedact(secrets ...string) Executor {
	c.config.localRedact = append(c.config.localRedact, secrets...)
	return c
}

// WithAllowNonZero accepts a non-zero exit on the next run.
func (c *Command) WithAllowNonZero() Executor {
	val := true
	c.config.localAllowNonZero = &val
	return c
}

// WithObserver sets the line observer for the next run.
func (c *Command) WithObserver(fn LineObserver) Executor {
	c.config.localObserver = fn
	return c
}

// Spec builds the CommandSpec the next Run would execute.
func (c *Command) Spec(args ...string) (CommandSpec, error) {
	if len(args) == 0 {
		return CommandSpec{}, newExecError(CommandSpec{}, nil, CodeInvalidInput, osexec.ErrNotFound, "no program given")
	}

	spec := CommandSpec{
		Program:      args[0],
		Args:         append([]string(nil), args[1:]...),
		Env:          c.config.effectiveEnv(),
		Dir:          c.config.effectiveDir(),
		Stdin:        c.stdin,
		Redact:       c.config.effectiveRedact(),
		AllowNonZero: c.config.effectiveAllowNonZero(),
		Observer:     c.config.effectiveObserver(),
	}
	// Without inheritance, a command given variables sees only those.
	spec.ClearEnv = !c.config.effectiveInheritEnv() && len(spec.Env) > 0

	timeout := c.timeout
	if timeout == "" {
		timeout = c.globalTimeout
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return CommandSpec{}, newExecError(spec, nil, CodeInvalidInput, err, "invalid timeout %q", timeout)
		}
		spec.Timeout = d
	}

	if c.config.effectivePassthrough() {
		spec.Stdout = c.stdout
		spec.Stderr = c.stderr
	}

	return spec, nil
}

// Run executes the command with the given arguments.
func (c *Command) Run(args ...string) (*CmdResult, error) {
	defer c.reset()

	spec, err := c.Spec(args...)
	if err != nil {
		return nil, err
	}

	return c.supervisor.Run(c.ctx, spec)
}

// reset clears local configuration so it does not carry over to the next run.
func (c *Command) reset() {
	c.config.resetLocal()
	c.timeout = ""
	c.stdin = nil
}

// Clone creates a copy of the executor with the same configuration.
func (c *Command) Clone() Executor {
	return &Command{
		config:        c.config.clone(),
		supervisor:    c.supervisor,
		ctx:           c.ctx,
		stdout:        c.stdout,
		stderr:        c.stderr,
		stdin:         c.stdin,
		globalTimeout: c.globalTimeout,
		timeout:       c.timeout,
	}
}
