// Package runner runs external commands under supervision.
//
// Each command is started in its own process group. Its stdout and stderr
// are read line by line by two concurrent pumps, secrets are redacted from
// every line before it is stored or forwarded, and the whole process group
// is killed when a timeout elapses or the context is cancelled. The result
// tells a clean exit, a non-zero exit, a timeout and a cancellation apart.
//
// # Supervisor
//
// Supervisor.Run is the core entry point:
//
//	sup := runner.NewSupervisor()
//	result, err := sup.Run(ctx, runner.CommandSpec{
//		Program: "deploy.sh",
//		Args:    []string{"--env", "prod"},
//		Redact:  []string{token},
//		Timeout: 10 * time.Minute,
//	})
//	switch {
//	case runner.IsTimeout(err):
//		// result holds the output captured before the kill
//	case runner.IsCancelled(err):
//	case err != nil:
//	}
//
// Run returns the captured result together with any error, so partial
// output is available even when the command failed.
//
// # Command Builder
//
// Command offers a fluent API on top of the supervisor. Options passed to
// New are global defaults; With methods apply to the next Run only. A
// Command that sets variables gives the child only those unless
// WithInheritEnv is used:
//
//	cmd := runner.New(
//		runner.WithInheritEnv(),
//		runner.WithRedact(apiKey),
//	)
//
//	result, err := cmd.
//		WithDir("/srv/app").
//		WithTimeout("30s").
//		WithAllowNonZero().
//		Run("make", "test")
//
// The child sees the caller's environment with Env layered on top. Set
// ClearEnv to give it only Env.
//
// For tools called often with different arguments, NewWrapper prepends
// the program and any leading arguments:
//
//	git := runner.NewWrapper(runner.New(), "git", "-C", "/repo")
//	result, err := git.Run("status")
//
// # Output
//
// Lines are split on "\n" (a trailing "\r" is dropped) and rejoined with
// "\n", so every captured line ends with a newline even if the process did
// not write one. CmdResult.Combined holds both streams in arrival order.
// An observer sees each redacted line as it arrives:
//
//	cmd.WithObserver(func(s runner.Stream, line string) {
//		fmt.Printf("[%s] %s\n", s, line)
//	})
//
// # Shutdown
//
// Every running process is recorded in a process-wide registry. KillAll
// signals all of them, which is useful when the application itself is
// shutting down:
//
//	runner.KillAll(syscall.SIGTERM)
//
// Executions stopped this way return an error for which IsCancelled is
// true. A process that crashes or is signaled from elsewhere fails with
// IsScriptFailed instead.
//
// # Errors
//
// Failures are returned as *ExecError carrying a code from
// github.com/jmgilman/go/errors: CodeIO, CodeScriptFailed, CodeTimedOut,
// CodeCancelled or CodeInvalidInput. More codes may be added, so switch
// statements should keep a default branch.
//
// # Testing
//
// Code that runs commands should accept the Executor interface. The mocks
// package provides a generated ExecutorMock.
package runner
