// Package runner wraps the external toolchain steps that follow code
// generation: handing the emitted C file to a system compiler and executing
// the resulting binary. There is no algorithmic content here, only OS
// process plumbing; the compiler package never sees any of it.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// ErrTimeout reports that an external process exceeded the caller's context
// deadline. The pipeline has no control over the process once launched, so
// a bounded wait is the only safety it can offer.
var ErrTimeout = errors.New("external process timed out")

// BuildError reports a non-zero exit from the system compiler. Stderr is
// relayed unmodified.
type BuildError struct {
	ExitCode int
	Stderr   string
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build failed (exit %d): %s", e.ExitCode, e.Stderr)
}

// RunError reports a non-zero exit from the compiled program.
type RunError struct {
	ExitCode int
	Stderr   string
}

func (e *RunError) Error() string {
	return fmt.Sprintf("program exited with status %d", e.ExitCode)
}

// buildArgs assembles the compiler invocation: cc -o bin src
func buildArgs(srcPath, binPath string) []string {
	return []string{"-o", binPath, srcPath}
}

// Build invokes the system C compiler cc on srcPath, producing binPath.
// A non-zero exit becomes *BuildError; a hit context deadline becomes
// ErrTimeout.
func Build(ctx context.Context, cc, srcPath, binPath string) error {
	cmd := exec.CommandContext(ctx, cc, buildArgs(srcPath, binPath)...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}
	// A compiler that failed on its own keeps its exit status even if the
	// deadline expired while it was dying; only a deadline kill (signal
	// exit, no status of its own) is a timeout.
	var ee *exec.ExitError
	switch {
	case errors.As(err, &ee) && ee.ExitCode() >= 0:
		return &BuildError{ExitCode: ee.ExitCode(), Stderr: stderr.String()}
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return ErrTimeout
	case ee != nil:
		return &BuildError{ExitCode: ee.ExitCode(), Stderr: stderr.String()}
	default:
		return fmt.Errorf("running %s: %w", cc, err)
	}
}

// Run executes the compiled binary with no arguments and returns its stdout
// unmodified. A non-zero exit becomes *RunError; a hit context deadline
// becomes ErrTimeout.
func Run(ctx context.Context, binPath string) (string, error) {
	cmd := exec.CommandContext(ctx, binPath)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err == nil {
		return stdout.String(), nil
	}
	var ee *exec.ExitError
	switch {
	case errors.As(err, &ee) && ee.ExitCode() >= 0:
		return stdout.String(), &RunError{ExitCode: ee.ExitCode(), Stderr: stderr.String()}
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return stdout.String(), ErrTimeout
	case ee != nil:
		return stdout.String(), &RunError{ExitCode: ee.ExitCode(), Stderr: stderr.String()}
	default:
		return stdout.String(), fmt.Errorf("running %s: %w", binPath, err)
	}
}
