package errors

import (
	"errors"
	"os"
	"os/exec"
)

// OsExit is a variable for testing, so we can mock os.Exit.
var OsExit = os.Exit

// Process exit codes. User errors are things the caller can fix on the
// command line or in the config file; environment errors need fixing
// outside this tool (credentials, network, filesystem).
const (
	ExitOK          = 0
	ExitUserError   = 1
	ExitEnvironment = 2
)

// GetExitCode maps an error chain to a process exit code.
//
// Child process exit codes (from `assume --exec`) pass through verbatim so
// wrappers can rely on them.
func GetExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}

	var assumeErr *AssumeRoleError
	if errors.As(err, &assumeErr) {
		return ExitEnvironment
	}

	if errors.Is(err, ErrCredentialsUnavailable) || errors.Is(err, ErrIO) {
		return ExitEnvironment
	}

	return ExitUserError
}
