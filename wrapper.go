package runner

import (
	"context"
	"io"
	"slices"
	"strings"
)

// CommandWrapper binds an Executor to one tool invocation: a program plus
// any leading arguments, such as "git -C /repo" or "docker compose". Every
// Run prepends that invocation to its arguments. CommandWrapper implements
// the Executor interface, so wrappers can be passed wherever an Executor is
// accepted and configured with the same fluent calls.
type CommandWrapper struct {
	executor Executor
	argv     []string
}

// NewWrapper creates a CommandWrapper that runs program with args ahead of
// the arguments given to each Run.
func NewWrapper(executor Executor, program string, args ...string) *CommandWrapper {
	return &CommandWrapper{
		executor: executor,
		argv:     append([]string{program}, args...),
	}
}

// Sub returns a wrapper for a subcommand of w. The new wrapper works on a
// clone of the underlying executor, so settings made on it stay local.
func (w *CommandWrapper) Sub(args ...string) *CommandWrapper {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		argv:     append(slices.Clone(w.argv), args...),
	}
}

// Program returns the program the wrapper runs.
func (w *CommandWrapper) Program() string {
	return w.argv[0]
}

// String returns the wrapped invocation, e.g. "docker compose".
func (w *CommandWrapper) String() string {
	return strings.Join(w.argv, " ")
}

// apply replaces the underlying executor with fn's result and returns w, so
// chained calls keep the wrapper's argument prefix.
func (w *CommandWrapper) apply(fn func(Executor) Executor) Executor {
	w.executor = fn(w.executor)
	return w
}

func (w *CommandWrapper) WithEnv(env map[string]string) Executor {
	return w.apply(func(e Executor) Executor { return e.WithEnv(env) })
}

func (w *CommandWrapper) WithDir(dir string) Executor {
	return w.apply(func(e Executor) Executor { return e.WithDir(dir) })
}

func (w *CommandWrapper) WithContext(ctx context.Context) Executor {
	return w.apply(func(e Executor) Executor { return e.WithContext(ctx) })
}

func (w *CommandWrapper) WithDisableColors() Executor {
	return w.apply(Executor.WithDisableColors)
}

func (w *CommandWrapper) WithTimeout(timeout string) Executor {
	return w.apply(func(e Executor) Executor { return e.WithTimeout(timeout) })
}

func (w *CommandWrapper) WithInheritEnv() Executor {
	return w.apply(Executor.WithInheritEnv)
}

func (w *CommandWrapper) WithStdout(out io.Writer) Executor {
	return w.apply(func(e Executor) Executor { return e.WithStdout(out) })
}

func (w *CommandWrapper) WithStderr(out io.Writer) Executor {
	return w.apply(func(e Executor) Executor { return e.WithStderr(out) })
}

func (w *CommandWrapper) WithPassthrough() Executor {
	return w.apply(Executor.WithPassthrough)
}

func (w *CommandWrapper) WithStdin(r io.Reader) Executor {
	return w.apply(func(e Executor) Executor { return e.WithStdin(r) })
}

func (w *CommandWrapper) WithStdinString(input string) Executor {
	return w.apply(func(e Executor) Executor { return e.WithStdinString(input) })
}

func (w *CommandWrapper) WithRedact(secrets ...string) Executor {
	return w.apply(func(e Executor) Executor { return e.WithRedact(secrets...) })
}

func (w *CommandWrapper) WithAllowNonZero() Executor {
	return w.apply(Executor.WithAllowNonZero)
}

func (w *CommandWrapper) WithObserver(fn LineObserver) Executor {
	return w.apply(func(e Executor) Executor { return e.WithObserver(fn) })
}

// Run executes the wrapped invocation followed by args.
func (w *CommandWrapper) Run(args ...string) (*CmdResult, error) {
	return w.executor.Run(append(slices.Clone(w.argv), args...)...)
}

// Clone creates a copy of the wrapper with the same invocation and a clone
// of the underlying executor.
func (w *CommandWrapper) Clone() Executor {
	return &CommandWrapper{
		executor: w.executor.Clone(),
		argv:     slices.Clone(w.argv),
	}
}
