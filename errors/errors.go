package errors

import (
	stderr "errors"
	"fmt"

	"github.com/suzuneyagi/bsts-lab/logs"
)

const (
	// ErrCodeInvalidValue is returned when an input token cannot be
	// parsed as a value of the configured type
	ErrCodeInvalidValue = 1000 + iota

	// ErrCodeInvalidType is returned when the configured value type
	// is not supported
	ErrCodeInvalidType

	// ErrCodeReadInput is returned when an input cannot be read
	ErrCodeReadInput
)

// Error is the error returned to the user when an operation
// fails to complete
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates a new Error
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// Code returns the ErrorCode of the first *Error in the chain
// of err, and 0 if there is none
func Code(err error) int {
	var e *Error
	if stderr.As(err, &e) {
		return e.ErrorCode
	}

	return 0
}
