package rcd

import (
	"errors"
	"fmt"
)

// Common errors returned by wrapper operations
var (
	// ErrUnknownDirective indicates the supervisor passed an unrecognized directive
	ErrUnknownDirective = errors.New("rcd: unknown directive")

	// ErrEmptyCommand indicates a Runner was asked to run an empty argv
	ErrEmptyCommand = errors.New("rcd: empty command")
)

// DirectiveError represents a failure while handling a directive
type DirectiveError struct {
	// Directive is the directive that failed
	Directive Directive
	// Path is the file path involved in the operation
	Path string
	// Err is the underlying error
	Err error
}

// Error returns a formatted error message
func (e *DirectiveError) Error() string {
	return fmt.Sprintf("rcd %s %q: %v", e.Directive.String(), e.Path, e.Err)
}

// Unwrap returns the underlying error for error chain inspection
func (e *DirectiveError) Unwrap() error {
	return e.Err
}
