// Package errors defines the coded errors shared by the CLI and the HTTP API.
//
// Low-level packages (graph, tree, canon) return plain sentinel errors. The
// layers that talk to users wrap them in an *Error carrying a [Code], which
// then decides the HTTP status of a failed request ([HTTPStatus]) and the
// exit status of the CLI ([ExitCode]).
//
//	err := errors.New(errors.ErrCodeInvalidInput, "unknown graph kind %q", kind)
//	if errors.Is(err, errors.ErrCodeInvalidInput) {
//	    ...
//	}
//
//	return errors.Wrap(errors.ErrCodeInvalidFormat, err, "line %d", n)
package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error category.
type Code string

const (
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidGraph  Code = "INVALID_GRAPH"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"

	// ErrCodeNotATree is returned by tree-only operations given a cyclic or
	// disconnected graph.
	ErrCodeNotATree Code = "NOT_A_TREE"

	// ErrCodeVerdictMismatch marks a pair whose verdict contradicts the
	// dataset directory it came from. The cause is a *MismatchError.
	ErrCodeVerdictMismatch Code = "VERDICT_MISMATCH"

	ErrCodeFileNotFound Code = "FILE_NOT_FOUND"
	ErrCodeUnsupported  Code = "UNSUPPORTED"
	ErrCodeInternal     Code = "INTERNAL_ERROR"
)

// Exit statuses returned by [ExitCode].
const (
	ExitFailure     = 1
	ExitMismatch    = 3
	ExitInterrupted = 130
)

// Error pairs a Code with a message and an optional cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return string(e.Code) + ": " + e.Message
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

func (e *Error) Unwrap() error { return e.Cause }

// New returns an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an *Error with a formatted message around cause.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// GetCode returns the code of the outermost *Error in err's chain, or ""
// when there is none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// Is reports whether the outermost *Error in err's chain has code.
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// UserMessage is err's text without the code prefix.
func UserMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// HTTPStatus maps a code to the status the API answers with.
func HTTPStatus(code Code) int {
	switch code {
	case ErrCodeInvalidInput, ErrCodeInvalidFormat, ErrCodeInvalidGraph, ErrCodeInvalidPath:
		return http.StatusBadRequest
	case ErrCodeNotATree:
		return http.StatusUnprocessableEntity
	case ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// ExitCode maps err to a process exit status: 0 for nil, 130 after an
// interrupt, 3 for a verdict mismatch and 1 otherwise.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	case Is(err, ErrCodeVerdictMismatch):
		return ExitMismatch
	default:
		return ExitFailure
	}
}

// MismatchError identifies the pair of graphs i and j in File whose verdict
// differs from Expected.
type MismatchError struct {
	File     string
	I, J     int
	Expected bool
}

func (e *MismatchError) Error() string {
	want := "non-isomorphic"
	if e.Expected {
		want = "isomorphic"
	}
	return fmt.Sprintf("%s: graphs %d and %d should be %s", e.File, e.I, e.J, want)
}

// Code returns ErrCodeVerdictMismatch.
func (e *MismatchError) Code() Code { return ErrCodeVerdictMismatch }
