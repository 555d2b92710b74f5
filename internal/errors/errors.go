// Package errors provides centralized error definitions and error handling utilities
// for teamdate. It defines sentinel errors, domain error types that carry the
// context needed to report a failure, and the mapping from errors to process
// exit codes.
//
// # Error Types
//
// Domain-specific errors represent failures of one input source:
//   - ConfigError: the config file could not be read, parsed or validated
//   - DateError: the free-text date could not be parsed
//   - TeamError: a requested team does not exist
//
// # Usage
//
// Creating errors:
//
//	err := errors.NewConfigError("couldn't parse config file", cause).WithPath(path)
//	err := errors.NewDateError("couldn't parse date", cause).WithInput("next tuesdy")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrInvalidTimezone) { ... }
//
//	var dateErr *errors.DateError
//	if errors.As(err, &dateErr) { ... }
//
// # Exit Codes
//
// [ExitCode] maps an error to the status the process exits with. Config and
// team failures exit with 1, date parse failures with 2.
package errors

import (
	"errors"
	"fmt"
	"strings"
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

// Process exit codes.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitDateParse = 2
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for problems that do not stop rendering.
	SeverityWarning Severity = iota
	// SeverityError is for errors that abort the current invocation.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

// Config-related sentinel errors
var (
	// ErrConfigRead indicates that the config file could not be opened or read.
	ErrConfigRead = New("config file unreadable")
	// ErrConfigParse indicates that the config file is not valid TOML or has
	// values of the wrong type.
	ErrConfigParse = New("config file malformed")
	// ErrInvalidTimezone indicates a member location unknown to the timezone database.
	ErrInvalidTimezone = New("unknown timezone")
	// ErrInvalidFormat indicates a date format pattern that cannot be rendered.
	ErrInvalidFormat = New("invalid date format")
)

// Input-related sentinel errors
var (
	// ErrDateParse indicates that a date string could not be understood.
	ErrDateParse = New("unparsable date")
	// ErrTeamNotFound indicates that a requested team is not configured.
	ErrTeamNotFound = New("team not found")
)

// -----------------------------------------------------------------------------
// Base Error Interface
// -----------------------------------------------------------------------------

// TeamdateError is the base interface for all teamdate errors.
type TeamdateError interface {
	error

	// Unwrap returns the underlying error, if any.
	Unwrap() error

	// Severity returns the severity level of this error.
	Severity() Severity

	// IsUserFacing returns true if the error message is safe to display
	// to end users.
	IsUserFacing() bool

	// ExitCode returns the process exit status for this error.
	ExitCode() int
}

// -----------------------------------------------------------------------------
// Base Error Implementation
// -----------------------------------------------------------------------------

// baseError provides common functionality for all error types.
type baseError struct {
	message    string
	cause      error
	severity   Severity
	userFacing bool
	exitCode   int
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

// Severity returns the error severity.
func (e *baseError) Severity() Severity {
	return e.severity
}

// IsUserFacing returns whether the error is safe to show users.
func (e *baseError) IsUserFacing() bool {
	return e.userFacing
}

// ExitCode returns the process exit status.
func (e *baseError) ExitCode() int {
	return e.exitCode
}

// format renders "<prefix> [k=v, ...]: message: cause".
func (e *baseError) format(prefix string, parts []string) string {
	if len(parts) > 0 {
		prefix = fmt.Sprintf("%s [%s]", prefix, strings.Join(parts, ", "))
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", prefix, e.message, e.cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.message)
}

// -----------------------------------------------------------------------------
// Domain-Specific Errors
// -----------------------------------------------------------------------------

// ConfigError represents failures loading or validating the config file.
//
// Example:
//
//	err := errors.NewConfigError("couldn't open config file", errors.ErrConfigRead)
//	err = err.WithPath("/home/alex/.config/teamdate/teams.toml")
//	fmt.Println(err) // "config error [path=/home/...]: couldn't open config file: config file unreadable"
type ConfigError struct {
	baseError
	Path   string
	Team   string
	Member string
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, cause error) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
			exitCode:   ExitFailure,
		},
	}
}

// NewConfigWarning creates a ConfigError for a problem that does not stop
// teamdate from running. Loaders log it instead of returning it.
func NewConfigWarning(message string) *ConfigError {
	return &ConfigError{
		baseError: baseError{
			message:    message,
			severity:   SeverityWarning,
			userFacing: true,
			exitCode:   ExitOK,
		},
	}
}

// WithPath adds the config file path to the error context.
func (e *ConfigError) WithPath(path string) *ConfigError {
	e.Path = path
	return e
}

// WithMember adds the offending team and member to the error context.
func (e *ConfigError) WithMember(team, member string) *ConfigError {
	e.Team = team
	e.Member = member
	return e
}

// Error returns the formatted error message.
func (e *ConfigError) Error() string {
	var parts []string
	if e.Path != "" {
		parts = append(parts, fmt.Sprintf("path=%s", e.Path))
	}
	if e.Team != "" {
		parts = append(parts, fmt.Sprintf("team=%s", e.Team))
	}
	if e.Member != "" {
		parts = append(parts, fmt.Sprintf("member=%s", e.Member))
	}
	return e.format("config "+e.severity.String(), parts)
}

// Is checks if this error matches the target.
func (e *ConfigError) Is(target error) bool {
	_, ok := target.(*ConfigError)
	return ok
}

// DateError represents a free-text date that could not be parsed.
//
// Example:
//
//	err := errors.NewDateError("couldn't parse date", cause).WithInput("next tuesdy")
type DateError struct {
	baseError
	Input string
}

// NewDateError creates a new DateError.
func NewDateError(message string, cause error) *DateError {
	return &DateError{
		baseError: baseError{
			message:    message,
			cause:      cause,
			severity:   SeverityError,
			userFacing: true,
			exitCode:   ExitDateParse,
		},
	}
}

// WithInput adds the offending date text to the error context.
func (e *DateError) WithInput(input string) *DateError {
	e.Input = input
	return e
}

// Error returns the formatted error message.
func (e *DateError) Error() string {
	var parts []string
	if e.Input != "" {
		parts = append(parts, fmt.Sprintf("input=%q", e.Input))
	}
	return e.format("date error", parts)
}

// Is checks if this error matches the target.
func (e *DateError) Is(target error) bool {
	_, ok := target.(*DateError)
	return ok
}

// TeamError represents a request for a team that is not configured.
type TeamError struct {
	baseError
	Team  string
	Known []string
}

// NewTeamError creates a TeamError for the named team wrapping ErrTeamNotFound.
func NewTeamError(team string, known []string) *TeamError {
	return &TeamError{
		baseError: baseError{
			message:    fmt.Sprintf("no team named %q", team),
			cause:      ErrTeamNotFound,
			severity:   SeverityError,
			userFacing: true,
			exitCode:   ExitFailure,
		},
		Team:  team,
		Known: known,
	}
}

// Error returns the formatted error message.
func (e *TeamError) Error() string {
	msg := e.message
	if len(e.Known) > 0 {
		msg = fmt.Sprintf("%s (known teams: %s)", msg, strings.Join(e.Known, ", "))
	}
	return msg
}

// Is checks if this error matches the target.
func (e *TeamError) Is(target error) bool {
	_, ok := target.(*TeamError)
	return ok
}

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsUserFacing returns true if the error message is safe to display to end users.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	var tdErr TeamdateError
	if As(err, &tdErr) {
		return tdErr.IsUserFacing()
	}
	return false
}

// GetSeverity returns the severity level of the error.
// Returns SeverityError for errors that don't implement TeamdateError.
func GetSeverity(err error) Severity {
	var tdErr TeamdateError
	if As(err, &tdErr) {
		return tdErr.Severity()
	}
	return SeverityError
}

// ExitCode returns the process exit status for err.
//
// Errors not created by this package exit with ExitFailure, except bare
// ErrDateParse chains which keep the date parse status.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var tdErr TeamdateError
	if As(err, &tdErr) {
		return tdErr.ExitCode()
	}
	if Is(err, ErrDateParse) {
		return ExitDateParse
	}
	return ExitFailure
}

// -----------------------------------------------------------------------------
// Convenience Constructors
// -----------------------------------------------------------------------------

// Wrap wraps an error with additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "failed to render team")
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
