// Package errors provides structured error types for the probekit engine.
// It defines error categories (Configuration, Temporary, NotFound, Timeout)
// that enable consistent error handling across the probe engine and its
// collaborators.
//
// Example usage:
//
//	if dups := findDuplicates(names); len(dups) > 0 {
//	    return errors.NewConfiguration("duplicate probe names", nil)
//	}
//
//	if err := client.Ping(ctx).Err(); err != nil {
//	    return errors.NewTemporary("cache unreachable", err)
//	}
package errors

import (
	"fmt"
)

// ConfigurationError represents an invalid or conflicting configuration.
// Configuration errors are fatal at startup: a service must not become
// ready while one is outstanding.
// Examples: duplicate probe registrations, an empty cache tag.
type ConfigurationError struct {
	msg   string
	cause error
}

// NewConfiguration creates a new configuration error with the given message
// and optional cause.
func NewConfiguration(msg string, cause error) error {
	return &ConfigurationError{msg: msg, cause: cause}
}

func (e *ConfigurationError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *ConfigurationError) Unwrap() error {
	return e.cause
}

// TemporaryError represents an error that might succeed if the operation is
// attempted again later.
// Examples: cache backend unreachable, network timeouts on a collaborator.
type TemporaryError struct {
	msg   string
	cause error
}

// NewTemporary creates a new temporary error with the given message and
// optional cause.
func NewTemporary(msg string, cause error) error {
	return &TemporaryError{msg: msg, cause: cause}
}

func (e *TemporaryError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *TemporaryError) Unwrap() error {
	return e.cause
}

// NotFoundError represents an error when a requested resource doesn't exist.
// Examples: unknown probe name, absent cache key.
type NotFoundError struct {
	resource string
	id       string
	cause    error
}

// NewNotFound creates a new not found error for the given resource and ID.
func NewNotFound(resource, id string) error {
	return &NotFoundError{resource: resource, id: id}
}

// NewNotFoundWithCause creates a new not found error with an underlying cause.
func NewNotFoundWithCause(resource, id string, cause error) error {
	return &NotFoundError{resource: resource, id: id, cause: cause}
}

func (e *NotFoundError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s %q not found: %v", e.resource, e.id, e.cause)
	}
	return fmt.Sprintf("%s %q not found", e.resource, e.id)
}

func (e *NotFoundError) Unwrap() error {
	return e.cause
}

// Resource returns the resource type that was not found.
func (e *NotFoundError) Resource() string {
	return e.resource
}

// ID returns the identifier that was not found.
func (e *NotFoundError) ID() string {
	return e.id
}

// TimeoutError represents an operation that exceeded its allotted duration.
// Examples: a probe exceeding its per-registration timeout.
type TimeoutError struct {
	msg   string
	cause error
}

// NewTimeout creates a new timeout error with the given message and optional
// cause.
func NewTimeout(msg string, cause error) error {
	return &TimeoutError{msg: msg, cause: cause}
}

func (e *TimeoutError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *TimeoutError) Unwrap() error {
	return e.cause
}
