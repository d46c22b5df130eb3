package atlasdown

import (
	"errors"
	"fmt"
)

// Sentinel errors for conditions that stop a conversion.
var (
	ErrInputNotFound = errors.New("atlasdown: input file not found")
	ErrOutputDir     = errors.New("atlasdown: invalid output directory")
	ErrWrite         = errors.New("atlasdown: cannot write output")
)

// ConvertError represents a fatal error in a specific conversion step.
// It wraps an underlying error and includes the step and path for context.
type ConvertError struct {
	Op   string // step, e.g. "open", "write"
	Path string // file or directory involved
	Err  error  // underlying error
}

func (e *ConvertError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("atlasdown.%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("atlasdown.%s %s: unknown error", e.Op, e.Path)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// newConvertError creates a new ConvertError wrapping err with step context.
func newConvertError(op, path string, err error) *ConvertError {
	return &ConvertError{Op: op, Path: path, Err: err}
}
