package pkg

import (
	"time"

	"github.com/google/uuid"
)

// errorTimestampLayout mirrors the documented error-body format
// "dd-MM-yyyy hh:mm:ss" (12-hour clock).
const errorTimestampLayout = "02-01-2006 03:04:05"

// AppError is a client-mappable application error. Status is the
// error-body status string (e.g. "Rejected", "Not Found"), Message the
// stable user-facing description, and Err the optional internal cause,
// which is logged but never serialized.

type AppError struct {
	Status     string
	Message    string
	Err        error
	HTTPStatus int
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPError is the JSON error body returned on every non-2xx response.
// A fresh traceId is generated per error for correlation with server logs.

type HTTPError struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	TraceID   string `json:"traceId"`
	Timestamp string `json:"timestamp"`
}

func NewDomainErrorSimple(status, message string, httpStatus int) *AppError {
	return &AppError{Status: status, Message: message, HTTPStatus: httpStatus}
}

func NewDomainError(status, message string, err error, httpStatus int) *AppError {
	return &AppError{Status: status, Message: message, Err: err, HTTPStatus: httpStatus}
}

// ToHTTPError builds the serializable error body. TraceID and Timestamp
// are assigned at call time, so two conversions of the same AppError
// produce distinct traces.
func (e *AppError) ToHTTPError() HTTPError {
	return HTTPError{
		Status:    e.Status,
		Message:   e.Message,
		TraceID:   uuid.NewString(),
		Timestamp: time.Now().Format(errorTimestampLayout),
	}
}
