package runner

import (
	"context"
	"io"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/executor.go -pkg mocks . Executor

// Executor is the fluent interface for configuring and running commands.
// Settings made through the With methods apply to the next Run only.
type Executor interface {
	// WithEnv sets environment variables for the command.
	WithEnv(env map[string]string) Executor

	// WithDir sets the working directory for the command.
	WithDir(dir string) Executor

	// WithContext sets the context for the command.
	// The process group is killed if the context is done before it exits.
	WithContext(ctx context.Context) Executor

	// WithDisableColors sets NO_COLOR=1, TERM=dumb, and other common
	// color-disabling variables.
	WithDisableColors() Executor

	// WithTimeout sets a timeout such as "30s" for the command.
	WithTimeout(timeout string) Executor

	// WithInheritEnv keeps the parent environment when variables are set.
	// A run that sets no variables always inherits it.
	WithInheritEnv() Executor

	// WithStdout sets the writer used for stdout passthrough.
	WithStdout(w io.Writer) Executor

	// WithStderr sets the writer used for stderr passthrough.
	WithStderr(w io.Writer) Executor

	// WithPassthrough mirrors redacted output to the stdout and stderr
	// writers while still capturing it.
	WithPassthrough() Executor

	// WithStdin feeds r to the command's standard input. Run returns once
	// the command exits, even if r has not reached EOF.
	WithStdin(r io.Reader) Executor

	// WithStdinString feeds input to the command's standard input.
	WithStdinString(input string) Executor

	// WithRedact adds secrets to replace with "[redacted]" in all output.
	WithRedact(secrets ...string) Executor

	// WithAllowNonZero makes a non-zero exit return a result instead of
	// an error.
	WithAllowNonZero() Executor

	// WithObserver receives every output line as it arrives.
	WithObserver(fn LineObserver) Executor

	// Run executes the command with the given arguments. The first
	// argument is the program.
	Run(args ...string) (*CmdResult, error)

	// Clone creates a copy of the executor with the same configuration.
	Clone() Executor
}

// Option is a function that configures a Command with global settings.
// These settings are applied at creation time and can be overridden by local settings.
type Option func(*Command)

// WithEnv returns an Option that sets global environment variables.
func WithEnv(env map[string]string) Option {
	return func(c *Command) {
		for k, v := range env {
			c.config.globalEnv[k] = v
		}
	}
}

// WithDir returns an Option that sets the global working directory.
func WithDir(dir string) Option {
	return func(c *Command) {
		c.config.globalDir = dir
	}
}

// WithContext returns an Option that sets the global context.
func WithContext(ctx context.Context) Option {
	return func(c *Command) {
		c.ctx = ctx
	}
}

// WithDisableColors returns an Option that globally disables color output.
func WithDisableColors() Option {
	return func(c *Command) {
		c.config.globalDisableColors = true
	}
}

// WithTimeout returns an Option that sets a global timeout.
func WithTimeout(timeout string) Option {
	return func(c *Command) {
		c.globalTimeout = timeout
	}
}

// WithInheritEnv returns an Option that globally enables environment inheritance.
func WithInheritEnv() Option {
	return func(c *Command) {
		c.config.globalInheritEnv = true
	}
}

// WithStdout returns an Option that sets the global stdout writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the global stderr writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}

// WithPassthrough returns an Option that globally enables output passthrough.
func WithPassthrough() Option {
	return func(c *Command) {
		c.config.globalPassthrough = true
	}
}

// WithRedact returns an Option that redacts secrets from every run.
func WithRedact(secrets ...string) Option {
	return func(c *Command) {
		c.config.globalRedact = append(c.config.globalRedact, secrets...)
	}
}

// WithAllowNonZero returns an Option that accepts non-zero exits globally.
func WithAllowNonZero() Option {
	return func(c *Command) {
		c.config.globalAllowNonZero = true
	}
}

// WithObserver returns an Option that sets a global line observer.
func WithObserver(fn LineObserver) Option {
	return func(c *Command) {
		c.config.globalObserver = fn
	}
}

// WithSupervisor returns an Option that runs commands through s.
func WithSupervisor(s *Supervisor) Option {
	return func(c *Command) {
		if s != nil {
			c.supervisor = s
		}
	}
}
