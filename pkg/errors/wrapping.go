package errors

import (
	"fmt"
)

// Wrap wraps an error with additional context while preserving the original
// error type. If err is already a typed error (Configuration, Temporary,
// NotFound, Timeout), it wraps it with the same type. Otherwise it returns a
// TemporaryError, the safest class for an unclassified failure.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}

	switch {
	case IsConfiguration(err):
		return NewConfiguration(msg, err)
	case IsTimeout(err):
		return NewTimeout(msg, err)
	case IsNotFound(err):
		// Preserve resource and ID from the original NotFoundError.
		var nfe *NotFoundError
		if As(err, &nfe) {
			return NewNotFoundWithCause(nfe.resource, nfe.id, err)
		}
		return NewTemporary(msg, err)
	case IsTemporary(err):
		return NewTemporary(msg, err)
	default:
		return NewTemporary(msg, err)
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error type.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
