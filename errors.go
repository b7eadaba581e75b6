package jsondec

import (
	"errors"
	"fmt"
)

// Core error definitions - sentinel errors for errors.Is matching
var (
	// Primary errors for common cases
	ErrInvalidJSON   = errors.New("invalid JSON format")
	ErrInvalidValue  = errors.New("invalid value")
	ErrUnexpectedEnd = errors.New("unexpected end of input")
	ErrDuplicateKey  = errors.New("duplicate object key")

	// Limit-related errors
	ErrSizeLimit    = errors.New("size limit exceeded")
	ErrDepthLimit   = errors.New("depth limit exceeded")
	ErrKeyLimit     = errors.New("object key limit exceeded")
	ErrElementLimit = errors.New("array element limit exceeded")

	// Lifecycle errors
	ErrDecoderClosed = errors.New("decoder is closed")
)

// SyntaxError describes a defect in the input text, located by byte offset
// and 1-based line/column. Err carries the sentinel classification so that
// errors.Is works across the wrapper.
type SyntaxError struct {
	Msg    string `json:"msg"`    // Human-readable description
	Offset int64  `json:"offset"` // Byte offset into the input
	Line   int    `json:"line"`   // 1-based line of the defect
	Column int    `json:"column"` // 1-based column (byte-based) of the defect
	Err    error  `json:"err"`    // Sentinel classification
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("jsondec: %s at line %d, column %d (offset %d)", e.Msg, e.Line, e.Column, e.Offset)
	}
	return fmt.Sprintf("jsondec: %s (offset %d)", e.Msg, e.Offset)
}

// Unwrap returns the sentinel classification for error chain support
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// DecodeError represents a decoding failure with essential context
type DecodeError struct {
	Op      string `json:"op"`      // Operation that failed
	Message string `json:"message"` // Human-readable error message
	Err     error  `json:"err"`     // Underlying error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsondec %s failed: %s", e.Op, e.Message)
}

// Unwrap returns the underlying error for error chain support
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is implements error matching for Go 1.13+ error handling
func (e *DecodeError) Is(target error) bool {
	if target == nil {
		return false
	}

	if targetErr, ok := target.(*DecodeError); ok {
		return e.Op == targetErr.Op && e.Err == targetErr.Err
	}

	return errors.Is(e.Err, target)
}

// Error helper functions for creating consistent error messages

// newOperationError creates a DecodeError for operation failures
func newOperationError(operation, message string, err error) error {
	return &DecodeError{
		Op:      operation,
		Message: message,
		Err:     err,
	}
}

// newSizeLimitError creates a DecodeError for input size limit violations
func newSizeLimitError(operation string, actual, limit int64) error {
	return &DecodeError{
		Op:      operation,
		Message: fmt.Sprintf("input size %d exceeds limit %d", actual, limit),
		Err:     ErrSizeLimit,
	}
}

// newDepthLimitError creates a DecodeError for nesting depth violations
func newDepthLimitError(operation string, actual, limit int) error {
	return &DecodeError{
		Op:      operation,
		Message: fmt.Sprintf("nesting depth %d exceeds limit %d", actual, limit),
		Err:     ErrDepthLimit,
	}
}

// newKeyLimitError creates a DecodeError for object key count violations
func newKeyLimitError(operation string, limit int) error {
	return &DecodeError{
		Op:      operation,
		Message: fmt.Sprintf("object exceeds %d keys", limit),
		Err:     ErrKeyLimit,
	}
}

// newElementLimitError creates a DecodeError for array element count violations
func newElementLimitError(operation string, limit int) error {
	return &DecodeError{
		Op:      operation,
		Message: fmt.Sprintf("array exceeds %d elements", limit),
		Err:     ErrElementLimit,
	}
}

// ErrorCode returns the machine-readable code for an error produced by this
// package, or ErrCodeUnknown for foreign errors.
func ErrorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidValue):
		return ErrCodeInvalidValue
	case errors.Is(err, ErrUnexpectedEnd):
		return ErrCodeUnexpectedEnd
	case errors.Is(err, ErrDuplicateKey):
		return ErrCodeDuplicateKey
	case errors.Is(err, ErrSizeLimit):
		return ErrCodeSizeLimit
	case errors.Is(err, ErrDepthLimit):
		return ErrCodeDepthLimit
	case errors.Is(err, ErrKeyLimit):
		return ErrCodeKeyLimit
	case errors.Is(err, ErrElementLimit):
		return ErrCodeElementLimit
	case errors.Is(err, ErrDecoderClosed):
		return ErrCodeDecoderClosed
	case errors.Is(err, ErrInvalidJSON):
		return ErrCodeInvalidJSON
	default:
		return ErrCodeUnknown
	}
}
