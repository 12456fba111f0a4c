package runner

import (
	"fmt"
	"strings"

	platformerrors "github.com/jmgilman/go/errors"
)

// Error codes reported by this package. Callers should switch on the code
// and always keep a default branch; new codes may be added.
const (
	// CodeIO indicates the process could not be spawned or its streams
	// could not be read or written.
	CodeIO platformerrors.ErrorCode = "IO_ERROR"

	// CodeScriptFailed indicates a non-zero exit without AllowNonZero.
	CodeScriptFailed = platformerrors.CodeExecutionFailed

	// CodeTimedOut indicates the timeout elapsed before the process exited.
	CodeTimedOut = platformerrors.CodeTimeout

	// CodeCancelled indicates the process was stopped by cancellation or by
	// an external signal.
	CodeCancelled platformerrors.ErrorCode = "CANCELLED"

	// CodeInvalidInput indicates the command description is unusable.
	CodeInvalidInput = platformerrors.CodeInvalidInput
)

// ExecError represents an error that occurred during command execution.
// It includes the command that was run and any output captured before the
// failure.
type ExecError struct {
	// Program is the executable that was run.
	Program string

	// Args are the arguments passed to Program.
	Args []string

	// Output is the trimmed combined output captured before the failure.
	Output string

	// Result holds everything captured, or nil if the process never started.
	Result *CmdResult

	// Err is a platform error carrying the error code. It wraps the
	// underlying cause, if any.
	Err platformerrors.PlatformError
}

// Error implements the error interface.
func (e *ExecError) Error() string {
	msg := e.Err.Error()
	if e.Code() == CodeScriptFailed && e.Output != "" {
		return msg + "\n" + e.Output
	}
	return msg
}

// Unwrap returns the underlying platform error.
func (e *ExecError) Unwrap() error {
	return e.Err
}

// Code returns the error code.
func (e *ExecError) Code() platformerrors.ErrorCode {
	return e.Err.Code()
}

// ExitCode returns the exit code of the failed process, or -1 if unknown.
func (e *ExecError) ExitCode() int {
	if e.Result == nil {
		return -1
	}
	return e.Result.Status.Code
}

// newExecError builds an ExecError for spec. cause may be nil.
func newExecError(spec CommandSpec, result *CmdResult, code platformerrors.ErrorCode, cause error, format string, args ...any) *ExecError {
	msg := fmt.Sprintf(format, args...)

	var perr platformerrors.PlatformError
	if cause != nil {
		perr = platformerrors.Wrap(cause, code, msg)
	} else {
		perr = platformerrors.New(code, msg)
	}

	e := &ExecError{
		Program: spec.Program,
		Args:    append([]string(nil), spec.Args...),
		Result:  result,
		Err:     perr,
	}
	if result != nil {
		e.Output = strings.TrimSpace(result.Combined)
	}
	return e
}

// IsTimeout reports whether err is a timeout error.
func IsTimeout(err error) bool {
	return platformerrors.GetCode(err) == CodeTimedOut
}

// IsCancelled reports whether err is a cancellation error.
func IsCancelled(err error) bool {
	return platformerrors.GetCode(err) == CodeCancelled
}

// IsScriptFailed reports whether err is a non-zero exit error.
func IsScriptFailed(err error) bool {
	return platformerrors.GetCode(err) == CodeScriptFailed
}

// IsIO reports whether err is a spawn or stream error.
func IsIO(err error) bool {
	return platformerrors.GetCode(err) == CodeIO
}
