// Package skeleton runs the external converter that rewrites Spine skeleton
// data (.json or .skel) for an older runtime version.
//
// The converter is a separate executable invoked as
//
//	<executable> <input> <output> -v <version> [--remove-curve]
//
// It runs to completion synchronously, bounded by a timeout, and is never
// retried. A non-zero exit is reported as a [*ProcessError] carrying the
// captured output verbatim.
package skeleton

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultVersion is the runtime version targeted when none is set.
const DefaultVersion = "3.8.75"

// DefaultTimeout bounds a single conversion when no timeout is set.
const DefaultTimeout = 60 * time.Second

var (
	// ErrConverterNotFound is returned when the executable cannot be found.
	ErrConverterNotFound = errors.New("skeleton: converter executable not found")
	// ErrTimeout is returned when the converter does not finish in time.
	ErrTimeout = errors.New("skeleton: converter timed out")
)

// ProcessError reports a converter run that did not exit cleanly.
type ProcessError struct {
	Command  []string
	ExitCode int // -1 if the process did not exit normally
	Stdout   string
	Stderr   string
	Err      error
}

// Error includes the captured output of both streams unmodified.
func (e *ProcessError) Error() string {
	var sb strings.Builder
	if errors.Is(e.Err, ErrTimeout) {
		sb.WriteString(e.Err.Error())
	} else {
		fmt.Fprintf(&sb, "skeleton converter exited with code %d", e.ExitCode)
	}
	if e.Stdout != "" {
		sb.WriteString("\nstdout:\n")
		sb.WriteString(e.Stdout)
	}
	if e.Stderr != "" {
		sb.WriteString("\nstderr:\n")
		sb.WriteString(e.Stderr)
	}
	return sb.String()
}

func (e *ProcessError) Unwrap() error {
	return e.Err
}

// Converter describes how to invoke the external converter.
type Converter struct {
	Executable  string
	Version     string        // target version, DefaultVersion if empty
	RemoveCurve bool          // pass --remove-curve
	Timeout     time.Duration // DefaultTimeout if zero
}

// New returns a converter for executable with the default settings.
func New(executable string) *Converter {
	return &Converter{
		Executable: executable,
		Version:    DefaultVersion,
		Timeout:    DefaultTimeout,
	}
}

// Command returns the full argument vector used to convert in to out.
func (c *Converter) Command(in, out string) []string {
	version := c.Version
	if version == "" {
		version = DefaultVersion
	}
	args := []string{c.Executable, in, out, "-v", version}
	if c.RemoveCurve {
		args = append(args, "--remove-curve")
	}
	return args
}

// Convert runs the converter on in, writing out. It blocks until the
// process exits, the timeout passes or ctx is done.
func (c *Converter) Convert(ctx context.Context, in, out string) error {
	path, err := exec.LookPath(c.Executable)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrConverterNotFound, c.Executable)
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := c.Command(in, out)
	cmd := exec.CommandContext(ctx, path, args[1:]...)
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if err == nil {
		return nil
	}

	perr := &ProcessError{
		Command:  args,
		ExitCode: -1,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Err:      err,
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		perr.Err = fmt.Errorf("%w after %v", ErrTimeout, timeout)
		return perr
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		perr.ExitCode = exitErr.ExitCode()
	}
	return perr
}
