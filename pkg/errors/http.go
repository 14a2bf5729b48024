package errors

import (
	"net/http"
)

// HTTPStatusCode returns the appropriate HTTP status code for the given error.
// It maps error types to standard HTTP status codes:
//   - NotFoundError -> 404 Not Found
//   - ConfigurationError -> 500 Internal Server Error
//   - TimeoutError -> 504 Gateway Timeout
//   - TemporaryError -> 503 Service Unavailable
//   - Unknown errors -> 500 Internal Server Error
func HTTPStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case IsNotFound(err):
		return http.StatusNotFound // 404
	case IsConfiguration(err):
		return http.StatusInternalServerError // 500
	case IsTimeout(err):
		return http.StatusGatewayTimeout // 504
	case IsTemporary(err):
		return http.StatusServiceUnavailable // 503
	default:
		return http.StatusInternalServerError // 500
	}
}

// WriteHTTPError writes an error response to an HTTP response writer.
// It automatically determines the status code based on the error type.
func WriteHTTPError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	http.Error(w, err.Error(), HTTPStatusCode(err))
}
