package gcloud

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/telkam/iosetup/internal/debug"
)

// Runner abstracts external command execution so flows can be tested with a
// fake. Calls block until the command resolves; only one call is in flight
// at a time.
type Runner interface {
	// Run executes a command and returns its standard output. A non-zero
	// exit fails with a *CommandError.
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner backs Runner with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	debug.Debug("[gcloud] running %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Command: name + " " + strings.Join(args, " "),
			Stderr:  strings.TrimSpace(stderr.String()),
			Cause:   err,
		}
	}
	return stdout.String(), nil
}
