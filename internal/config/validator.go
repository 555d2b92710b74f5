package config

import (
	"fmt"
	"strings"

	"github.com/Iron-Ham/teamdate/internal/errors"
	"github.com/Iron-Ham/teamdate/internal/timefmt"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "teams.wcgw[1].name")
	Value   any    // The invalid value
	Message string // Human-readable error description
	Err     error  // Sentinel the failure matches, if any
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the sentinel behind the failure.
func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// Unwrap exposes each failure to errors.Is and errors.As.
func (e ValidationErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, err := range e {
		errs[i] = err
	}
	return errs
}

// Validate checks the configuration for invalid values and returns all validation errors
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateDateFormat()...)
	errs = append(errs, c.validateTeams()...)
	return errs
}

func (c *Config) validateDateFormat() []ValidationError {
	if err := timefmt.Validate(c.DateFormat()); err != nil {
		return []ValidationError{{
			Field:   "date_format",
			Value:   c.DateFormatPattern,
			Message: err.Error(),
			Err:     errors.ErrInvalidFormat,
		}}
	}
	return nil
}

func (c *Config) validateTeams() []ValidationError {
	var errs []ValidationError
	for _, t := range c.teams.Teams() {
		if strings.TrimSpace(t.Name) == "" {
			errs = append(errs, ValidationError{
				Field:   "teams",
				Value:   t.Name,
				Message: "team name must not be blank",
				Err:     errors.ErrConfigParse,
			})
		}
		for i, m := range t.Members {
			if strings.TrimSpace(m.Name) == "" {
				errs = append(errs, ValidationError{
					Field:   fmt.Sprintf("teams.%s[%d].name", t.Name, i),
					Value:   m.Name,
					Message: "member name must not be blank",
					Err:     errors.ErrConfigParse,
				})
			}
		}
	}
	return errs
}

// Warnings returns problems that don't stop teamdate from running. Each is a
// *errors.ConfigError with errors.SeverityWarning.
func (c *Config) Warnings() []error {
	var warnings []error
	if c.DefaultTeamName != "" && !c.teams.Has(c.DefaultTeamName) {
		warnings = append(warnings, errors.NewConfigWarning(
			fmt.Sprintf("default_team %q is not a configured team; showing all teams", c.DefaultTeamName)))
	}
	return warnings
}
