package engine

import (
	"errors"
	"fmt"
)

// ErrorCode classifies the ways a simulation request can be rejected.
type ErrorCode int

const (
	ErrCodeUnknown ErrorCode = iota

	// ErrCodeInvalidConfiguration covers a non-positive capacity or an unknown policy.
	ErrCodeInvalidConfiguration

	// ErrCodeInvalidInput covers reference entries that are not usable as pages.
	ErrCodeInvalidInput
)

func (c ErrorCode) String() string {
	switch c {
	case ErrCodeInvalidConfiguration:
		return "invalid configuration"
	case ErrCodeInvalidInput:
		return "invalid input"
	default:
		return "unknown"
	}
}

// Error is returned for every rejected simulation request.
type Error struct {
	Code    ErrorCode
	Op      string // Operation that rejected the request
	Message string
	Err     error // Underlying error (if any)
}

// Sentinels for errors.Is; they match any *Error with the same code.
var (
	ErrInvalidConfiguration = &Error{Code: ErrCodeInvalidConfiguration, Message: "invalid configuration"}
	ErrInvalidInput         = &Error{Code: ErrCodeInvalidInput, Message: "invalid input"}
)

func (e *Error) Error() string {
	if e.Op != "" {
		if e.Err != nil {
			return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
		}
		return fmt.Sprintf("%s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error carrying the same code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// NewError creates a new simulation error.
func NewError(code ErrorCode, op, message string, err error) *Error {
	return &Error{
		Code:    code,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

func ErrInvalidCapacity(op string, capacity int) *Error {
	return NewError(
		ErrCodeInvalidConfiguration,
		op,
		fmt.Sprintf("frame capacity must be a positive integer, got %d", capacity),
		nil,
	)
}

func ErrUnknownPolicy(op string, err error) *Error {
	return NewError(ErrCodeInvalidConfiguration, op, "unknown replacement policy", err)
}

func ErrMalformedReference(op string, pos int, detail string) *Error {
	return NewError(
		ErrCodeInvalidInput,
		op,
		fmt.Sprintf("reference %d is not a page identifier: %s", pos, detail),
		nil,
	)
}

// CodeOf returns the code carried by err, or ErrCodeUnknown.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrCodeUnknown
}
