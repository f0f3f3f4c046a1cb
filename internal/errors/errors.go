// Package errors provides centralized error definitions and error handling
// utilities for the vsm codebase. It defines domain-specific errors, sentinel
// errors, constructors with context wrapping, and classification helpers.
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewSessionError("failed to delete session", cause).WithSession("work")
//
//	// Config error
//	err := errors.NewConfigError("invalid configuration", cause)
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrSessionNotFound) { ... }
//
//	var cfgErr *errors.ConfigError
//	if errors.As(err, &cfgErr) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Session-related sentinel errors
var (
	// ErrSessionNotFound indicates that a named session has no matching file.
	ErrSessionNotFound = New("session not found")
	// ErrSessionDirNotFound indicates that the session directory does not exist.
	ErrSessionDirNotFound = New("session directory not found")
)

// Variant-related sentinel errors
var (
	// ErrUnknownVariant indicates a variant name outside the supported set.
	ErrUnknownVariant = New("unknown editor variant")
	// ErrNoVariantInstalled indicates that none of the supported variants
	// could be found on the system.
	ErrNoVariantInstalled = New("no supported editor variant installed")
)

// Selection-related sentinel errors
var (
	// ErrSelectionCancelled indicates the user aborted an interactive prompt.
	// This is a normal user choice, not a fault; see IsCancellation.
	ErrSelectionCancelled = New("selection cancelled")
	// ErrNoCandidates indicates a selection was requested with nothing to
	// choose from. Reported before any prompt is shown.
	ErrNoCandidates = New("nothing to select from")
)

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	userFacing bool
}

// Error returns the error message.
func (e *baseError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.message, e.cause)
	}
	return e.message
}

// Unwrap returns the underlying error.
func (e *baseError) Unwrap() error {
	return e.cause
}

// Is checks if this error matches the target.
func (e *baseError) Is(target error) bool {
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// ConfigError represents an unreadable or invalid persisted configuration.
//
// Example:
//
//	err := errors.NewConfigError("invalid configuration", cause).WithPath(path)
type ConfigError struct {
	baseError
	Path string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithPath adds the config file path to the error context.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	prefix := "config error"
	if e.Path != "" {
		prefix = fmt.Sprintf("config error [%s]", e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	if _, ok := target.(*ConfigError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// SessionError represents errors related to session file management.
//
// Example:
//
//	err := errors.NewSessionError("failed to delete session", cause).WithSession("work")
type SessionError struct {
	baseError
	Session string
}

// NewSessionError creates a new SessionError.
func NewSessionError(message string, cause error) *SessionError {
	return &SessionError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			userFacing: true,
		},
	}
}

// WithSession adds a session name to the error context.
func (e *SessionError) WithSession(name string) *SessionError {
	e.Session = name
	return e
}

// Error returns the formatted error message.
func (e *SessionError) Error() string {
	prefix := "session error"
	if e.Session != "" {
		prefix = fmt.Sprintf("session error [session=%s]", e.Session)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// Is checks if this error matches the target.
func (e *SessionError) Is(target error) bool {
	if _, ok := target.(*SessionError); ok {
		return true
	}
	return e.baseError.Is(target)
}

// ExitCodeError carries a child process exit code that the tool should
// mirror as its own. Used by the open action: the editor's exit status is
// the run's result.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError creates a new ExitCodeError.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

// Error returns the formatted error message.
func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("editor exited with status %d", e.Code)
}

// IsCancellation returns true if the error represents the user backing out
// of an interactive prompt. Cancellation is a normal outcome: callers should
// report it neutrally and exit zero.
func IsCancellation(err error) bool {
	return Is(err, ErrSelectionCancelled)
}

// IsUserFacing returns true if the error message is safe to display to end
// users. Sentinel and typed vsm errors are user-facing; anything else is
// reported generically.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}

	var userFacing interface{ IsUserFacing() bool }
	if As(err, &userFacing) {
		return userFacing.IsUserFacing()
	}

	for _, sentinel := range []error{
		ErrSessionNotFound, ErrSessionDirNotFound,
		ErrUnknownVariant, ErrNoVariantInstalled,
		ErrSelectionCancelled, ErrNoCandidates,
	} {
		if Is(err, sentinel) {
			return true
		}
	}
	return false
}

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to scan sessions")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
