package runner

import (
	platformerrors "github.com/jmgilman/go/errors"
)

// assemble classifies a finished execution. cause is the error that made
// the controller stop the process, if any.
//
// The result is returned together with any error so callers can inspect
// partial output after a failure.
func assemble(spec CommandSpec, result *CmdResult, cause error) (*CmdResult, error) {
	switch result.State {
	case StateCompleted:
		// A process that died by a signal has no exit code to allow.
		if result.Status.Code == 0 || (spec.AllowNonZero && result.Status.Code > 0) {
			return result, nil
		}
		return result, newExecError(spec, result, CodeScriptFailed, nil,
			"%s exited with non-zero status: %s", spec.Program, result.Status)

	case StateTimedOut:
		if cause == nil {
			return result, newExecError(spec, result, CodeTimedOut, nil,
				"%s timed out after %s", spec.Program, spec.Timeout)
		}
		return result, newExecError(spec, result, CodeTimedOut, cause,
			"%s timed out", spec.Program)

	case StateCancelled:
		return result, newExecError(spec, result, CodeCancelled, cause,
			"%s was cancelled", spec.Program)

	case StateKilled:
		// Stopped by a KillAll this execution did not issue.
		return result, newExecError(spec, result, CodeCancelled, nil,
			"%s was killed: %s", spec.Program, result.Status)

	default:
		return result, newExecError(spec, result, platformerrors.CodeInternal, nil,
			"%s finished in unexpected state %s", spec.Program, result.State)
	}
}
