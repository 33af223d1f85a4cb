package failure

import (
	"errors"
	"fmt"
	"net/http"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	// Remaining carries the current seat availability on capacity conflicts so
	// the caller can resubmit with a smaller count.
	Remaining *int `json:"remaining,omitempty"`
	// Retryable marks upstream failures worth retrying; validation and
	// conflict failures never are.
	Retryable bool `json:"retryable,omitempty"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}

// Error returns the failure message.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// CapacityConflict reports that a booking asked for more seats than the
// schedule currently has, carrying the remaining availability.
func CapacityConflict(remaining int) error {
	return &Failure{
		Code:      http.StatusConflict,
		Message:   fmt.Sprintf("only %d seats available", remaining),
		Remaining: &remaining,
	}
}

// TooManyRequests returns a retryable Failure for throttled upstreams.
func TooManyRequests(msg string) error {
	return &Failure{
		Code:      http.StatusTooManyRequests,
		Message:   msg,
		Retryable: true,
	}
}

// Unavailable returns a retryable Failure for an unreachable or erroring
// upstream (data store, assistant, routing engine). Distinct from NotFound:
// it must never be read as "no results".
func Unavailable(msg string) error {
	return &Failure{
		Code:      http.StatusServiceUnavailable,
		Message:   msg,
		Retryable: true,
	}
}

// UnknownOutcome reports a write sequence that may have partially completed.
// The caller must re-verify instead of assuming success or failure.
func UnknownOutcome(msg string) error {
	return &Failure{
		Code:    http.StatusInternalServerError,
		Message: msg + "; booking status unknown, please check your bookings",
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetRemaining returns the remaining availability attached to a capacity
// conflict, or -1 when the error carries none.
func GetRemaining(err error) int {
	var fail *Failure
	if errors.As(err, &fail) && fail.Remaining != nil {
		return *fail.Remaining
	}

	return -1
}

// IsRetryable reports whether the caller may usefully retry the operation.
func IsRetryable(err error) bool {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Retryable
	}

	return false
}
