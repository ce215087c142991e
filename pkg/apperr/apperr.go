// Package apperr carries an HTTP-aware error through the service layer so
// handlers can answer with the right status without inspecting driver errors.
package apperr

import (
	"errors"
	"net/http"
)

// Error is an application error with the HTTP status it maps to.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(message string) *Error {
	return &Error{Code: http.StatusNotFound, Message: message}
}

func BadRequest(message string) *Error {
	return &Error{Code: http.StatusBadRequest, Message: message}
}

func Internal(message string) *Error {
	return &Error{Code: http.StatusInternalServerError, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Code: http.StatusConflict, Message: message}
}

// HTTPStatus returns the status code for err. Errors that are not *Error
// map to 500.
func HTTPStatus(err error) int {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// Message returns the client-facing text for err. Internal details of
// non-application errors are hidden.
func Message(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return "Internal Server Error"
}

// IsNotFound reports whether err is a 404 application error.
func IsNotFound(err error) bool {
	return HTTPStatus(err) == http.StatusNotFound
}
