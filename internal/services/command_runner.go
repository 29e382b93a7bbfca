package services

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"
)

type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct {
	timeout time.Duration
}

func NewExecRunner(timeout time.Duration) CommandRunner {
	return &execRunner{timeout: timeout}
}

// Run returns the standard output of the command. A non-zero exit status is
// reported together with whatever the command printed to standard error.
func (r *execRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return stdout.String(), fmt.Errorf("%s %v: %w: %s", name, args, err, bytes.TrimSpace(stderr.Bytes()))
	}

	return stdout.String(), nil
}
