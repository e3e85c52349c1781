package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code
type ErrorCode int

// Error kinds for the exercise library. Every operation is total over its
// documented domain, so these cover the only ways a call can fail.
const (
	ErrDomainRange ErrorCode = iota + 1000
	ErrArithmetic
	ErrMalformedInput
)

// AppError represents an application error
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error constructors
func NewDomainRange(message string, err error) *AppError {
	return &AppError{
		Code:    ErrDomainRange,
		Message: message,
		Err:     err,
	}
}

func NewArithmetic(message string, err error) *AppError {
	return &AppError{
		Code:    ErrArithmetic,
		Message: message,
		Err:     err,
	}
}

func NewMalformedInput(message string, err error) *AppError {
	return &AppError{
		Code:    ErrMalformedInput,
		Message: message,
		Err:     err,
	}
}

// DomainRangef builds a domain-range error from a format string.
func DomainRangef(format string, args ...interface{}) *AppError {
	return NewDomainRange(fmt.Sprintf(format, args...), nil)
}

// MalformedInputf builds a malformed-input error from a format string.
func MalformedInputf(format string, args ...interface{}) *AppError {
	return NewMalformedInput(fmt.Sprintf(format, args...), nil)
}

// CodeOf reports the ErrorCode carried by err, unwrapping as needed.
// The second return is false when err is not an AppError.
func CodeOf(err error) (ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return 0, false
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	c, ok := CodeOf(err)
	return ok && c == code
}
