package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jmgilman/go/runner"
	"github.com/jmgilman/go/runner/registry"
)

// Exit codes. A command that ran to completion exits with its own code.
const (
	ExitSuccess      = 0
	ExitRuntimeError = 1
	ExitUsageError   = 2
	ExitTimeout      = 124
	ExitSpawnError   = 127
	ExitInterrupted  = 130
)

type options struct {
	timeout      time.Duration
	redact       []string
	allowNonZero bool
	dir          string
	env          []string
	clearEnv     bool
	stdin        bool
	verbose      bool
}

// app holds the state of one invocation.
type app struct {
	opts     options
	registry *registry.Registry

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	mu       sync.Mutex
	exitCode int
}

// Run executes the root command and returns an exit code.
func Run() int {
	cmd, a := newRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return ExitUsageError
	}
	return a.exitCode
}

func newRootCommand(stdin io.Reader, stdout, stderr io.Writer) (*cobra.Command, *app) {
	a := &app{
		registry: registry.Default(),
		stdin:    stdin,
		stdout:   stdout,
		stderr:   stderr,
	}

	cmd := &cobra.Command{
		Use:   "runner [flags] -- program [args...]",
		Short: "Run a command under supervision",
		Long: "Runner executes a command in its own process group, streams its output with " +
			"secrets redacted, and kills the whole group on timeout or interrupt.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.run,
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.DurationVarP(&a.opts.timeout, "timeout", "t", 0, "kill the command after this duration (0 disables)")
	flags.StringArrayVarP(&a.opts.redact, "redact", "r", nil, "secret to replace with [redacted] in output (repeatable)")
	flags.BoolVar(&a.opts.allowNonZero, "allow-nonzero", false, "do not report a non-zero exit as a failure")
	flags.StringVarP(&a.opts.dir, "dir", "C", "", "working directory")
	flags.StringArrayVarP(&a.opts.env, "env", "e", nil, "environment variable KEY=VALUE (repeatable)")
	flags.BoolVar(&a.opts.clearEnv, "clear-env", false, "start from an empty environment instead of the current one")
	flags.BoolVar(&a.opts.stdin, "stdin", false, "forward standard input to the command")
	flags.BoolVarP(&a.opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd, a
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	env, err := parseEnv(a.opts.env)
	if err != nil {
		return err
	}

	zl := newZapLogger(a.stderr, a.opts.verbose)
	defer func() { _ = zl.Sync() }()
	log := zl.Sugar()

	spec := runner.CommandSpec{
		Program:      args[0],
		Args:         args[1:],
		Env:          env,
		ClearEnv:     a.opts.clearEnv,
		Dir:          a.opts.dir,
		Redact:       a.opts.redact,
		Timeout:      a.opts.timeout,
		AllowNonZero: a.opts.allowNonZero,
		Observer:     a.printLine,
	}
	if a.opts.stdin {
		spec.Stdin = a.stdin
	}

	stop := a.forwardSignals(log)
	defer stop()

	sup := runner.NewSupervisor(
		runner.WithRegistry(a.registry),
		runner.WithLogger(newSlogLogger(zl)),
	)

	result, err := sup.Run(cmd.Context(), spec)
	a.exitCode = exitCodeFor(result, err)

	switch {
	case err == nil:
	case runner.IsScriptFailed(err):
		log.Warnw("command exited with non-zero status", "code", result.ExitCode())
	default:
		log.Errorw("command failed", "error", err)
	}

	return nil
}

// printLine writes an output line to the matching stream.
func (a *app) printLine(stream runner.Stream, line string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	w := a.stdout
	if stream == runner.StreamStderr {
		w = a.stderr
	}
	_, _ = fmt.Fprintln(w, line)
}

// forwardSignals kills every supervised process group on SIGINT or
// SIGTERM until the returned function is called.
func (a *app) forwardSignals(log *zap.SugaredLogger) func() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigs:
				n := a.registry.KillAll(sig)
				log.Infow("forwarded signal", "signal", sig.String(), "processes", n)
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigs)
		close(done)
	}
}

func parseEnv(pairs []string) (map[string]string, error) {
	env := make(map[string]string, len(pairs))
	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, platformerrors.Newf(platformerrors.CodeInvalidInput,
				"invalid --env value %q: expected KEY=VALUE", p)
		}
		env[k] = v
	}
	return env, nil
}

func exitCodeFor(result *runner.CmdResult, err error) int {
	switch {
	case err == nil, runner.IsScriptFailed(err):
		// Shells report a death by signal as 128 plus the signal number.
		if sig, ok := result.Status.Signal.(syscall.Signal); ok {
			return 128 + int(sig)
		}
		if result.ExitCode() < 0 {
			return ExitRuntimeError
		}
		return result.ExitCode()
	case runner.IsTimeout(err):
		return ExitTimeout
	case runner.IsCancelled(err):
		return ExitInterrupted
	case runner.IsIO(err):
		return ExitSpawnError
	default:
		return ExitRuntimeError
	}
}
