package gcloud

import "fmt"

// CommandError represents an external command that exited non-zero. The exit
// code is not interpreted beyond success/failure; stderr is carried so the
// user can be told what failed.
type CommandError struct {
	// Command is the full command line that was executed.
	Command string
	// Stderr is the captured standard error output.
	Stderr string
	// Cause is the underlying execution error.
	Cause error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("command %q failed: %s", e.Command, e.Stderr)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command, e.Cause)
}

// Unwrap returns the underlying cause error.
func (e *CommandError) Unwrap() error {
	return e.Cause
}
