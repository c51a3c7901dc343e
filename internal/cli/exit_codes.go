package cli

import "fmt"

// Exit codes for the propworld CLI.
// These codes support programmatic composition and CI/CD integration.
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitLintFindings indicates lint or check found violations
	ExitLintFindings = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingFile indicates a required input file was not found
	ExitMissingFile = 4
)

// ExitError carries an exit code up to main without printing anything;
// commands are expected to have reported the problem already.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// NewExitError creates an ExitError with the given code.
func NewExitError(code int) *ExitError {
	return &ExitError{Code: code}
}
