// Package errors provides standardized error types for Series and DataFrame
// operations. FrameError carries operation context and wraps one of the
// sentinel kind errors so callers can classify failures with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel kind errors. Every FrameError wraps exactly one of these.
var (
	// ErrIndexOutOfRange indicates access outside [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrLengthMismatch indicates elementwise operands of unequal length.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrDuplicateColumnName indicates two input columns sharing a name.
	ErrDuplicateColumnName = errors.New("duplicate column name")

	// ErrUnknownColumn indicates lookup of a column that does not exist.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDivisionByZero indicates integer division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrUnsupportedOperation indicates an operation applied to an element
	// kind that does not support it.
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// FrameError represents standardized errors across all Series and DataFrame
// operations.
type FrameError struct {
	Op      string // Operation name (e.g., "Add", "Column", "FromRecords")
	Column  string // Column name if applicable
	Message string // Human-readable error description
	Kind    error  // One of the sentinel kind errors above
}

// Error implements the error interface.
func (e *FrameError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s operation failed on column '%s': %s", e.Op, e.Column, e.Message)
	}
	return fmt.Sprintf("%s operation failed: %s", e.Op, e.Message)
}

// Unwrap returns the sentinel kind so errors.Is can classify the failure.
func (e *FrameError) Unwrap() error {
	return e.Kind
}

// Is implements error equality checking for errors.Is().
func (e *FrameError) Is(target error) bool {
	if fe, ok := target.(*FrameError); ok {
		return e.Op == fe.Op && e.Column == fe.Column && e.Message == fe.Message
	}
	return false
}

// Common error constructors for consistent error creation

// NewIndexOutOfRangeError creates an error for out-of-bounds element access.
func NewIndexOutOfRangeError(op string, index, length int) *FrameError {
	return &FrameError{
		Op:      op,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, length),
		Kind:    ErrIndexOutOfRange,
	}
}

// NewLengthMismatchError creates an error for elementwise operations on
// operands of unequal length.
func NewLengthMismatchError(op string, left, right int) *FrameError {
	return &FrameError{
		Op:      op,
		Message: fmt.Sprintf("series lengths differ: %d vs %d", left, right),
		Kind:    ErrLengthMismatch,
	}
}

// NewDuplicateColumnError creates an error for repeated column names during
// DataFrame construction.
func NewDuplicateColumnError(op, column string) *FrameError {
	return &FrameError{
		Op:      op,
		Column:  column,
		Message: "column name appears more than once",
		Kind:    ErrDuplicateColumnName,
	}
}

// NewUnknownColumnError creates an error for lookups of non-existent columns.
func NewUnknownColumnError(op, column string) *FrameError {
	return &FrameError{
		Op:      op,
		Column:  column,
		Message: "column does not exist",
		Kind:    ErrUnknownColumn,
	}
}

// NewDivisionByZeroError creates an error for integer division by zero.
func NewDivisionByZeroError(op string, index int) *FrameError {
	return &FrameError{
		Op:      op,
		Message: fmt.Sprintf("zero divisor at index %d", index),
		Kind:    ErrDivisionByZero,
	}
}

// NewUnsupportedOperationError creates an error for operations applied to an
// element kind that cannot support them.
func NewUnsupportedOperationError(op, message string) *FrameError {
	return &FrameError{
		Op:      op,
		Message: message,
		Kind:    ErrUnsupportedOperation,
	}
}
