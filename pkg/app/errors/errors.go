// Package errors contains the service error type returned across the ramp API
// and the mapping of its categories onto HTTP status codes.
package errors

import (
	"errors"
	"net/http"
)

// Category defines error category
type Category int

const (
	// CategoryNoError marks a successful outcome.
	CategoryNoError Category = iota
	// CategoryDataError The client sent invalid data in the request body, query or headers.
	CategoryDataError
	// CategoryUnauthorized The client did not present a usable wallet credential.
	CategoryUnauthorized
	// CategoryForbidden The credential is valid but does not grant access to the resource.
	CategoryForbidden
	// CategoryResourceNotFound The client is attempting to access a resource that does not exist
	CategoryResourceNotFound
	// CategoryNotSupported The requested functionality is not supported
	CategoryNotSupported
	// CategoryDataConflict The request conflicts with the current state of a resource
	CategoryDataConflict
	// CategoryLocked The resource is busy, for example a retry already in flight
	CategoryLocked
	// CategoryDependencyFailure A payment provider or other upstream is failing
	CategoryDependencyFailure
	// CategoryGeneralError The service failed in an unexpected way
	CategoryGeneralError
	// CategoryConnectionTimeout An upstream did not answer in time
	CategoryConnectionTimeout
)

var categories = map[Category]struct {
	name   string
	status int
}{
	CategoryNoError:           {"CategoryNoError", http.StatusOK},
	CategoryDataError:         {"CategoryDataError", http.StatusBadRequest},
	CategoryUnauthorized:      {"CategoryUnauthorized", http.StatusUnauthorized},
	CategoryForbidden:         {"CategoryForbidden", http.StatusForbidden},
	CategoryResourceNotFound:  {"CategoryResourceNotFound", http.StatusNotFound},
	CategoryNotSupported:      {"CategoryNotSupported", http.StatusMethodNotAllowed},
	CategoryDataConflict:      {"CategoryDataConflict", http.StatusConflict},
	CategoryLocked:            {"CategoryLocked", http.StatusLocked},
	CategoryDependencyFailure: {"CategoryDependencyFailure", http.StatusBadGateway},
	CategoryGeneralError:      {"CategoryGeneralError", http.StatusInternalServerError},
	CategoryConnectionTimeout: {"CategoryConnectionTimeout", http.StatusGatewayTimeout},
}

func (c Category) String() string {
	if info, ok := categories[c]; ok {
		return info.name
	}
	return categories[CategoryGeneralError].name
}

// ServiceError carries a category, a client-facing message and the
// underlying cause that only ends up in logs.
type ServiceError struct {
	Category Category
	Message  string
	Err      error
}

// Error method to comply with error interface
func (err ServiceError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	return err.Message
}

// Unwrap returns the underlying error
func (err ServiceError) Unwrap() error {
	return err.Err
}

// Is reports whether target carries the same client-facing message.
func (err ServiceError) Is(target error) bool {
	return err.Message == target.Error()
}

// Is checks that provided error is a ServiceError with desired Category
func Is(err error, cat Category) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && svcErr.Category == cat {
		return true
	}
	return false
}

// IsInternalError reports whether err should be treated as a server side failure.
func IsInternalError(err error) bool {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) && (svcErr.Category < CategoryDependencyFailure) {
		return false
	}
	return true
}

func newError(cat Category, err error, message, fallback string) error {
	if err == nil {
		err = errors.New(fallback)
	}
	return &ServiceError{
		Category: cat,
		Message:  message,
		Err:      err,
	}
}

// GeneralError hides err behind "Internal Server Error".
func GeneralError(err error) error {
	return newError(CategoryGeneralError, err, "Internal Server Error", "internal server error")
}

// InternalError returns a 500 that shows message to the client.
func InternalError(err error, message string) error {
	return newError(CategoryGeneralError, err, message, "internal error: "+message)
}

// ResourceNotFoundError returns an error with category ResourceNotFound.
// message is returned to the client, err is only logged.
func ResourceNotFoundError(err error, message string) error {
	return newError(CategoryResourceNotFound, err, message, "resource not found: "+message)
}

// BadRequestError returns an error with category DataError.
func BadRequestError(err error, message string) error {
	return newError(CategoryDataError, err, message, "bad request: "+message)
}

// NotSupportedError returns an error with category NotSupported.
func NotSupportedError(err error, message string) error {
	return newError(CategoryNotSupported, err, message, "not supported: "+message)
}

// ForbiddenError returns an error with category Forbidden.
func ForbiddenError(err error, message string) error {
	return newError(CategoryForbidden, err, message, "request forbidden")
}

// UnAuthorizedError returns an error with category Unauthorized.
func UnAuthorizedError(err error, message string) error {
	return newError(CategoryUnauthorized, err, message, "unauthorized")
}

// ConflictError returns an error with category DataConflict.
func ConflictError(err error, message string) error {
	return newError(CategoryDataConflict, err, message, "conflict")
}

// LockedError returns an error with category Locked.
func LockedError(err error, message string) error {
	return newError(CategoryLocked, err, message, "locked")
}

// DependencyFailureError returns an error with category DependencyFailure.
func DependencyFailureError(err error, message string) error {
	return newError(CategoryDependencyFailure, err, message, "dependency failure: "+message)
}

// TimeoutError returns an error with category ConnectionTimeout.
func TimeoutError(err error, message string) error {
	return newError(CategoryConnectionTimeout, err, message, "timeout: "+message)
}

// StatusCode returns the HTTP status code for the error category.
// Unknown categories and CategoryNoError map to 500.
func (err ServiceError) StatusCode() int {
	info, ok := categories[err.Category]
	if !ok || err.Category == CategoryNoError {
		return http.StatusInternalServerError
	}
	return info.status
}
