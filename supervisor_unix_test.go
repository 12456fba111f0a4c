//go:build !windows

package runner

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	platformerrors "github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/runner/registry"
)

// newTestSupervisor returns a supervisor with a private registry so tests
// can run in parallel without seeing each other's processes.
func newTestSupervisor(t *testing.T, opts ...SupervisorOption) (*Supervisor, *registry.Registry) {
	t.Helper()
	r := registry.New()
	opts = append([]SupervisorOption{WithRegistry(r)}, opts...)
	return NewSupervisor(opts...), r
}

func shell(script string) CommandSpec {
	return CommandSpec{Program: "sh", Args: []string{"-c", script}}
}

// processGone reports whether pid no longer runs. Zombies count as gone
// because they cannot execute anything.
func processGone(pid int) bool {
	if err := syscall.Kill(pid, 0); err != nil {
		return errors.Is(err, syscall.ESRCH)
	}
	stat, err := os.ReadFile("/proc/" + strconv.Itoa(pid) + "/stat")
	if err != nil {
		return false
	}
	// The state follows the parenthesised command name.
	fields := strings.Fields(string(stat[bytes.LastIndexByte(stat, ')')+1:]))
	return len(fields) > 0 && fields[0] == "Z"
}

func TestRun_Echo(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	result, err := sup.Run(context.Background(), CommandSpec{Program: "echo", Args: []string{"hello"}})
	require.NoError(t, err)

	assert.Equal(t, "hello\n", result.Stdout)
	assert.Equal(t, "", result.Stderr)
	assert.Equal(t, 0, result.ExitCode())
	assert.Nil(t, result.Status.Signal)
	assert.Equal(t, StateCompleted, result.State)
	assert.True(t, result.Success())
	assert.Equal(t, 0, reg.Len())
}

func TestRun_CapturesStreamsExactly(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	result, err := sup.Run(context.Background(), shell(`printf 'line1\nline2\nline3\n'; printf 'err1\nerr2\n' >&2`))
	require.NoError(t, err)

	assert.Equal(t, "line1\nline2\nline3\n", result.Stdout)
	assert.Equal(t, "err1\nerr2\n", result.Stderr)
	assert.Len(t, strings.Split(strings.TrimSpace(result.Combined), "\n"), 5)
}

func TestRun_LineEndings(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   string
	}{
		{name: "final line without newline", script: `printf 'a\nno newline'`, want: "a\nno newline\n"},
		{name: "crlf", script: `printf 'a\r\nb\r\n'`, want: "a\nb\n"},
		{name: "empty lines kept", script: `printf 'a\n\nb\n'`, want: "a\n\nb\n"},
		{name: "no output", script: `true`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup, _ := newTestSupervisor(t)
			result, err := sup.Run(context.Background(), shell(tt.script))
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Stdout)
		})
	}
}

func TestRun_LongLine(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	result, err := sup.Run(context.Background(), shell(`i=0; while [ $i -lt 20000 ]; do printf 'xxxxxxxxxx'; i=$((i+1)); done; echo`))
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("x", 200000)+"\n", result.Stdout)
}

func TestRun_Redaction(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		result, err := sup.Run(context.Background(), CommandSpec{
			Program: "echo",
			Args:    []string{"secret-value"},
			Redact:  []string{"secret-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, "[redacted]\n", result.Stdout)
		assert.NotContains(t, result.Combined, "secret-value")
	})

	t.Run("stderr and multiple secrets", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		spec := shell(`echo "user=admin pass=hunter2"; echo "token abc123 and hunter2" >&2`)
		spec.Redact = []string{"hunter2", "abc123"}

		result, err := sup.Run(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, "user=admin pass=[redacted]\n", result.Stdout)
		assert.Equal(t, "token [redacted] and [redacted]\n", result.Stderr)
		for _, secret := range spec.Redact {
			assert.NotContains(t, result.Combined, secret)
		}
	})

	t.Run("error output is redacted", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		spec := shell(`echo "leaking hunter2"; exit 3`)
		spec.Redact = []string{"hunter2"}

		_, err := sup.Run(context.Background(), spec)
		require.Error(t, err)

		var execErr *ExecError
		require.True(t, errors.As(err, &execErr))
		assert.Equal(t, "leaking [redacted]", execErr.Output)
		assert.NotContains(t, err.Error(), "hunter2")
	})

	t.Run("secret split across lines survives", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		spec := shell(`printf 'top-\nsecret\n'`)
		spec.Redact = []string{"top-secret", "top-\nsecret"}

		result, err := sup.Run(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, "top-\nsecret\n", result.Stdout)
	})
}

func TestRun_NonZeroExit(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	result, err := sup.Run(context.Background(), shell(`echo out; echo err >&2; exit 42`))
	require.Error(t, err)
	assert.True(t, IsScriptFailed(err))
	assert.Equal(t, CodeScriptFailed, platformerrors.GetCode(err))

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "sh", execErr.Program)
	assert.Equal(t, []string{"-c", `echo out; echo err >&2; exit 42`}, execErr.Args)
	assert.Equal(t, 42, execErr.ExitCode())
	assert.Contains(t, execErr.Output, "out")
	assert.Contains(t, execErr.Output, "err")
	assert.Contains(t, err.Error(), "exit code 42")

	require.NotNil(t, result)
	assert.Equal(t, 42, result.ExitCode())
	assert.Equal(t, StateCompleted, result.State)
	assert.Equal(t, 0, reg.Len())
}

func TestRun_SignalDeathIsScriptFailure(t *testing.T) {
	tests := []struct {
		name         string
		allowNonZero bool
	}{
		{name: "default"},
		{name: "allow non-zero", allowNonZero: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sup, reg := newTestSupervisor(t)
			spec := shell(`echo boom; kill -SEGV $$`)
			spec.AllowNonZero = tt.allowNonZero

			result, err := sup.Run(context.Background(), spec)
			require.Error(t, err)
			assert.True(t, IsScriptFailed(err), "unexpected error: %v", err)
			assert.False(t, IsCancelled(err))

			assert.Equal(t, StateCompleted, result.State)
			assert.Equal(t, syscall.SIGSEGV, result.Status.Signal)
			assert.Equal(t, -1, result.ExitCode())
			assert.Equal(t, "boom\n", result.Stdout)
			assert.Equal(t, 0, reg.Len())
		})
	}
}

func TestRun_ForeignSignalIsScriptFailure(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	// Killed by someone other than the registry.
	result, err := sup.Run(context.Background(), shell(`kill -TERM $$; sleep 5`))
	require.Error(t, err)
	assert.True(t, IsScriptFailed(err), "unexpected error: %v", err)
	assert.Equal(t, syscall.SIGTERM, result.Status.Signal)
}

func TestRun_AllowNonZero(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	spec := shell(`exit 7`)
	spec.AllowNonZero = true

	result, err := sup.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 7, result.ExitCode())
	assert.False(t, result.Success())
}

func TestRun_Timeout(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	spec := CommandSpec{Program: "sleep", Args: []string{"60"}, Timeout: 100 * time.Millisecond}

	start := time.Now()
	result, err := sup.Run(context.Background(), spec)
	elapsed := time.Since(start)

	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.False(t, IsCancelled(err))
	assert.GreaterOrEqual(t, elapsed, 100*time.Millisecond)
	assert.Less(t, elapsed, 5*time.Second)

	require.NotNil(t, result)
	assert.Equal(t, StateTimedOut, result.State)
	assert.Equal(t, 0, reg.Len())
}

func TestRun_TimeoutKillsDescendants(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	spec := shell(`sleep 60 & echo $!; wait`)
	spec.Timeout = 300 * time.Millisecond

	result, err := sup.Run(context.Background(), spec)
	require.Error(t, err)
	require.True(t, IsTimeout(err))

	pid, convErr := strconv.Atoi(strings.TrimSpace(result.Stdout))
	require.NoError(t, convErr, "expected grandchild pid in output, got %q", result.Stdout)

	assert.Eventually(t, func() bool { return processGone(pid) }, 5*time.Second, 20*time.Millisecond,
		"grandchild %d survived the timeout", pid)
}

func TestRun_TimeoutKeepsPartialOutput(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	spec := shell(`echo before; sleep 60; echo after`)
	spec.Timeout = 300 * time.Millisecond

	result, err := sup.Run(context.Background(), spec)
	require.True(t, IsTimeout(err))

	var execErr *ExecError
	require.True(t, errors.As(err, &execErr))
	assert.Equal(t, "before\n", result.Stdout)
	assert.Equal(t, "before", execErr.Output)
	assert.Same(t, result, execErr.Result)
}

func TestRun_Cancel(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(100*time.Millisecond, cancel)

	result, err := sup.Run(ctx, CommandSpec{Program: "sleep", Args: []string{"60"}, Timeout: time.Minute})
	require.Error(t, err)
	assert.True(t, IsCancelled(err))
	assert.False(t, IsTimeout(err))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, StateCancelled, result.State)
	assert.Equal(t, 0, reg.Len())
}

func TestRun_ContextDeadlineIsTimeout(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	_, err := sup.Run(ctx, CommandSpec{Program: "sleep", Args: []string{"60"}})
	require.Error(t, err)
	assert.True(t, IsTimeout(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_AlreadyCancelled(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var observed bool
	result, err := sup.Run(ctx, CommandSpec{
		Program:  "echo",
		Args:     []string{"never"},
		Observer: func(Stream, string) { observed = true },
	})
	require.Error(t, err)
	assert.True(t, IsCancelled(err))
	assert.Equal(t, StateCancelled, result.State)
	assert.Empty(t, result.Stdout)
	assert.False(t, observed)
	assert.Equal(t, 0, reg.Len())
}

func TestRun_SpawnFailure(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	result, err := sup.Run(context.Background(), CommandSpec{Program: "/nonexistent/definitely-not-here"})
	require.Error(t, err)
	assert.True(t, IsIO(err))
	assert.Nil(t, result)
	assert.Equal(t, 0, reg.Len())
}

func TestRun_EmptyProgram(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	_, err := sup.Run(context.Background(), CommandSpec{})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidInput, platformerrors.GetCode(err))
}

func TestRun_Stdin(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		result, err := sup.Run(context.Background(), CommandSpec{
			Program: "cat",
			Stdin:   strings.NewReader("line1\nline2\nline3"),
		})
		require.NoError(t, err)
		assert.Equal(t, "line1\nline2\nline3\n", result.Stdout)
	})

	t.Run("large stream", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		input := strings.Repeat("0123456789abcdef\n", 64*1024)
		result, err := sup.Run(context.Background(), CommandSpec{
			Program: "cat",
			Stdin:   strings.NewReader(input),
		})
		require.NoError(t, err)
		assert.Equal(t, input, result.Stdout)
	})

	t.Run("child ignores stdin", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		result, err := sup.Run(context.Background(), CommandSpec{
			Program: "true",
			Stdin:   strings.NewReader(strings.Repeat("x", 1<<20)),
		})
		require.NoError(t, err)
		assert.Equal(t, 0, result.ExitCode())
	})
}

func TestRun_OpenStdinDoesNotDelayExit(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	start := time.Now()
	result, err := sup.Run(context.Background(), CommandSpec{Program: "true", Stdin: pr})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode())
	assert.Less(t, time.Since(start), DefaultDrainTimeout)
}

func TestRun_LogsLifecycle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sup, _ := newTestSupervisor(t, WithLogger(logger))

	_, err := sup.Run(context.Background(), CommandSpec{Program: "echo", Args: []string{"hi"}})
	require.NoError(t, err)

	logs := buf.String()
	assert.Contains(t, logs, "process spawned")
	assert.Contains(t, logs, "from=spawned to=running")
	assert.Contains(t, logs, "from=running to=completed")
	assert.NotContains(t, logs, "invalid state transition")
}

func TestRun_Environment(t *testing.T) {
	t.Setenv("RUNNER_PARENT_VAR", "from-parent")

	t.Run("inherits by default", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		result, err := sup.Run(context.Background(), shell(`echo "[$RUNNER_PARENT_VAR] [$HOME]"`))
		require.NoError(t, err)
		assert.Equal(t, "[from-parent] ["+os.Getenv("HOME")+"]\n", result.Stdout)
	})

	t.Run("overrides layered on parent", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		spec := shell(`echo "$RUNNER_PARENT_VAR $MINE"`)
		spec.Env = map[string]string{"MINE": "mine"}

		result, err := sup.Run(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, "from-parent mine\n", result.Stdout)
	})

	t.Run("override replaces parent value", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		spec := shell(`echo "$RUNNER_PARENT_VAR"`)
		spec.Env = map[string]string{"RUNNER_PARENT_VAR": "from-child"}

		result, err := sup.Run(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, "from-child\n", result.Stdout)
	})

	t.Run("clear", func(t *testing.T) {
		sup, _ := newTestSupervisor(t)
		spec := shell(`echo "$VAR1 $VAR2 [$RUNNER_PARENT_VAR]"`)
		spec.Env = map[string]string{"VAR1": "first", "VAR2": "second"}
		spec.ClearEnv = true

		result, err := sup.Run(context.Background(), spec)
		require.NoError(t, err)
		assert.Equal(t, "first second []\n", result.Stdout)
	})
}

func TestRun_Dir(t *testing.T) {
	sup, _ := newTestSupervisor(t)
	dir := t.TempDir()

	result, err := sup.Run(context.Background(), CommandSpec{Program: "pwd", Dir: dir})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(result.Stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRun_ObserverAndCombinedOrder(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	var mu sync.Mutex
	var seen []string
	spec := shell(`echo one; sleep 0.2; echo two >&2; sleep 0.2; echo three`)
	spec.Redact = []string{"three"}
	spec.Observer = func(s Stream, line string) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, s.String()+":"+line)
	}

	result, err := sup.Run(context.Background(), spec)
	require.NoError(t, err)

	assert.Equal(t, "one\ntwo\n[redacted]\n", result.Combined)
	assert.Equal(t, "one\n[redacted]\n", result.Stdout)
	assert.Equal(t, "two\n", result.Stderr)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"stdout:one", "stderr:two", "stdout:[redacted]"}, seen)
}

func TestRun_Passthrough(t *testing.T) {
	sup, _ := newTestSupervisor(t)

	var out, errOut bytes.Buffer
	spec := shell(`echo visible hunter2; echo warn >&2`)
	spec.Redact = []string{"hunter2"}
	spec.Stdout = &out
	spec.Stderr = &errOut

	_, err := sup.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, "visible [redacted]\n", out.String())
	assert.Equal(t, "warn\n", errOut.String())
}

func TestRun_RegisteredWhileRunning(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	var during int
	spec := shell(`echo started`)
	spec.Observer = func(Stream, string) { during = reg.Len() }

	_, err := sup.Run(context.Background(), spec)
	require.NoError(t, err)
	assert.Equal(t, 1, during)
	assert.Equal(t, 0, reg.Len())
}

func TestRun_DetachedDescendantHoldingPipes(t *testing.T) {
	sup, _ := newTestSupervisor(t, WithDrainTimeout(200*time.Millisecond))

	start := time.Now()
	result, err := sup.Run(context.Background(), shell(`sleep 60 & echo $!`))
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)

	pid, convErr := strconv.Atoi(strings.TrimSpace(result.Stdout))
	require.NoError(t, convErr)
	t.Cleanup(func() { _ = syscall.Kill(pid, syscall.SIGKILL) })
}

func TestRun_KillAll(t *testing.T) {
	reg := registry.New()
	sup := NewSupervisor(WithRegistry(reg))

	type runResult struct {
		result *CmdResult
		err    error
	}
	results := make(chan runResult, 2)
	for i := 0; i < 2; i++ {
		go func() {
			r, err := sup.Run(context.Background(), CommandSpec{Program: "sleep", Args: []string{"60"}})
			results <- runResult{r, err}
		}()
	}

	require.Eventually(t, func() bool { return reg.Len() == 2 }, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 2, reg.KillAll(syscall.SIGTERM))

	for i := 0; i < 2; i++ {
		select {
		case o := <-results:
			require.Error(t, o.err)
			assert.True(t, IsCancelled(o.err), "unexpected error: %v", o.err)
			assert.Equal(t, StateKilled, o.result.State)
			assert.Equal(t, syscall.SIGTERM, o.result.Status.Signal)
		case <-time.After(5 * time.Second):
			t.Fatal("execution did not stop after KillAll")
		}
	}
	assert.Equal(t, 0, reg.Len())

	result, err := sup.Run(context.Background(), CommandSpec{Program: "echo", Args: []string{"after"}})
	require.NoError(t, err)
	assert.Equal(t, "after\n", result.Stdout)
}

func TestRun_Concurrent(t *testing.T) {
	sup, reg := newTestSupervisor(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			want := strconv.Itoa(n)
			result, err := sup.Run(context.Background(), CommandSpec{Program: "echo", Args: []string{want}})
			if assert.NoError(t, err) {
				assert.Equal(t, want+"\n", result.Stdout)
			}
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 0, reg.Len())
}
