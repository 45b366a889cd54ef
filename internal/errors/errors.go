package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates a file does not exist where existence was required.
	ErrNotFound = errors.New("file not found")

	// ErrInvalidBackupName indicates a backup filename does not follow the
	// <stem>_<timestamp>.<ext> naming convention.
	ErrInvalidBackupName = errors.New("invalid backup name")

	// ErrUnsupportedPath indicates a key-path mutation targets a depth or
	// shape the setter does not support.
	ErrUnsupportedPath = errors.New("unsupported key path")

	// ErrBackupFailed indicates backup creation failed inside the write path.
	// The write is aborted so existing data is never overwritten without a
	// safety copy.
	ErrBackupFailed = errors.New("backup failed, write aborted to protect existing data")
)

// FormatError reports malformed JSON or a structurally invalid document.
// Line and Column are 1-based when derivable from the parser, zero otherwise.
type FormatError struct {
	Path   string
	Line   int
	Column int
	Detail string
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid configuration in %s at line %d, column %d: %s\n\nSuggestion: check JSON syntax and ensure proper quoting",
			e.Path, e.Line, e.Column, e.Detail)
	}
	return fmt.Sprintf("invalid configuration in %s: %s\n\nSuggestion: check JSON syntax and ensure proper quoting",
		e.Path, e.Detail)
}

// ValidationError reports a named validation rule rejecting a document.
// Suggestion is always populated with an actionable remedy.
type ValidationError struct {
	Rule       string
	Detail     string
	Suggestion string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s\n\nSuggestion: %s", e.Rule, e.Detail, e.Suggestion)
}

// FilesystemError reports an I/O failure, carrying the attempted operation
// and the path it targeted.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *FilesystemError) Error() string {
	return fmt.Sprintf("filesystem error: %s failed for %s: %v\n\nSuggestion: check file permissions and disk space", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *FilesystemError) Unwrap() error {
	return e.Err
}

// NewFilesystemError wraps an I/O failure with the operation and path.
func NewFilesystemError(op, path string, err error) *FilesystemError {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

// ExitError wraps an error with an exit code and optional suggestion for CLI
// applications. It implements the error interface and supports unwrapping.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Re-exported helpers so callers use one errors package.
var (
	New    = errors.New
	Newf   = errors.Newf
	Wrap   = errors.Wrap
	Wrapf  = errors.Wrapf
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)
