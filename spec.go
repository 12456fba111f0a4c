package runner

import (
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// Stream identifies which output stream a line came from.
type Stream int

const (
	// StreamStdout is standard output.
	StreamStdout Stream = iota
	// StreamStderr is standard error.
	StreamStderr
)

// String returns the stream name.
func (s Stream) String() string {
	switch s {
	case StreamStdout:
		return "stdout"
	case StreamStderr:
		return "stderr"
	default:
		return "unknown"
	}
}

// LineObserver receives each redacted output line as it arrives.
// It is called from the stdout and stderr pumps concurrently and must be
// safe for concurrent use.
type LineObserver func(stream Stream, line string)

// CommandSpec describes a single command execution.
// A CommandSpec must not be modified while Run is using it.
type CommandSpec struct {
	// Program is the executable to run. It is resolved through PATH when
	// it contains no path separator.
	Program string

	// Args are passed to Program in order.
	Args []string

	// Env holds environment overrides for the child. They are applied on
	// top of the caller's environment.
	Env map[string]string

	// ClearEnv starts the child from an empty environment, so it sees only
	// Env.
	ClearEnv bool

	// Dir is the working directory. Empty means the caller's directory.
	Dir string

	// Stdin is copied to the child's standard input. When nil the child
	// reads from the null device. Run does not wait for a source that is
	// still open when the child exits; the copy ends with the source.
	Stdin io.Reader

	// Redact lists secrets replaced by "[redacted]" in all captured output.
	Redact []string

	// Timeout kills the process group when it elapses. Zero disables it.
	Timeout time.Duration

	// AllowNonZero returns a result instead of an error for non-zero exits.
	AllowNonZero bool

	// Observer, when set, receives every output line.
	Observer LineObserver

	// Stdout and Stderr, when set, receive a copy of every redacted line
	// of the matching stream.
	Stdout io.Writer
	Stderr io.Writer
}

// String renders the command line for logs and error messages.
func (s CommandSpec) String() string {
	if len(s.Args) == 0 {
		return s.Program
	}
	return s.Program + " " + strings.Join(s.Args, " ")
}

// environ builds the child environment in KEY=VALUE form. It returns nil,
// meaning the caller's environment unchanged, when there is nothing to
// override. Overrides are sorted so the result is deterministic and come
// after inherited entries so they win.
func (s CommandSpec) environ() []string {
	if len(s.Env) == 0 && !s.ClearEnv {
		return nil
	}

	var env []string
	if !s.ClearEnv {
		env = os.Environ()
	}

	keys := make([]string, 0, len(s.Env))
	for k := range s.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// An empty non-nil slice keeps exec.Cmd from falling back to os.Environ.
	if env == nil {
		env = make([]string, 0, len(keys))
	}
	for _, k := range keys {
		env = append(env, k+"="+s.Env[k])
	}
	return env
}
