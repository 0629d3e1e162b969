package pma

import (
	"errors"
	"fmt"
)

// Error represents a pma error with an error code.
type Error struct {
	Code    ErrorCode
	Message string
	Err     error // wrapped error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pma: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("pma: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorCode identifies the kind of failure a pma operation hit.
type ErrorCode int

// Error codes, one per failure kind named in the container's contract.
const (
	// Success indicates the operation completed without error.
	Success ErrorCode = 0

	// ErrNullContainer indicates an operation was called on a nil *PMA.
	ErrNullContainer ErrorCode = 1

	// ErrOutOfBounds indicates an index outside [0, N) was used with a checked accessor.
	ErrOutOfBounds ErrorCode = 2

	// ErrDuplicateKey indicates Insert was called with a key already present.
	ErrDuplicateKey ErrorCode = 3

	// ErrNotFound indicates Delete was called with a key that is not present.
	ErrNotFound ErrorCode = 4

	// ErrCapacityExceeded indicates a resize would require more than 2^56 slots.
	ErrCapacityExceeded ErrorCode = 5

	// ErrInternalInvariantViolation indicates a pack/spread postcondition failed; this is a bug.
	ErrInternalInvariantViolation ErrorCode = 6

	// ErrAllocationFailure indicates the backing store refused to grow.
	ErrAllocationFailure ErrorCode = 7
)

var errorMessages = map[ErrorCode]string{
	Success:                       "success",
	ErrNullContainer:              "operation called on a nil container",
	ErrOutOfBounds:                "index out of bounds",
	ErrDuplicateKey:               "key already present",
	ErrNotFound:                   "key not found",
	ErrCapacityExceeded:           "resize would exceed maximum capacity",
	ErrInternalInvariantViolation: "pack/spread postcondition violated",
	ErrAllocationFailure:          "backing store allocation failed",
}

// NewError creates a new Error with the given code.
func NewError(code ErrorCode) *Error {
	msg, ok := errorMessages[code]
	if !ok {
		msg = fmt.Sprintf("unknown error code %d", code)
	}
	return &Error{Code: code, Message: msg}
}

// WrapError creates a new Error wrapping another error.
func WrapError(code ErrorCode, err error) *Error {
	e := NewError(code)
	e.Err = err
	return e
}

// Sentinel errors for the kinds listed in ErrorCode, for use with errors.Is/errors.As.
var (
	ErrNullContainerError     = NewError(ErrNullContainer)
	ErrOutOfBoundsError       = NewError(ErrOutOfBounds)
	ErrDuplicateKeyError      = NewError(ErrDuplicateKey)
	ErrNotFoundError          = NewError(ErrNotFound)
	ErrCapacityExceededError  = NewError(ErrCapacityExceeded)
	ErrInvariantViolationErr  = NewError(ErrInternalInvariantViolation)
	ErrAllocationFailureError = NewError(ErrAllocationFailure)
)

// NotFound is a sentinel error for "key not found", kept for callers that
// prefer a plain stdlib sentinel over the richer *Error. Use IsNotFound to check.
var NotFound = errors.New("key not found")

// IsNotFound reports whether err is (or wraps) ErrNotFound.
func IsNotFound(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrNotFound
	}
	return errors.Is(err, NotFound)
}

// IsDuplicateKey reports whether err is (or wraps) ErrDuplicateKey.
func IsDuplicateKey(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrDuplicateKey
	}
	return false
}

// IsCapacityExceeded reports whether err is (or wraps) ErrCapacityExceeded.
func IsCapacityExceeded(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrCapacityExceeded
	}
	return false
}

// Code returns the error code carried by err, or ErrInternalInvariantViolation
// if err is not a *Error (an unexpected error shape is itself a bug signal).
func Code(err error) ErrorCode {
	if err == nil {
		return Success
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrInternalInvariantViolation
}
