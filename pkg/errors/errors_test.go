package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorText(t *testing.T) {
	err := New(ErrCodeInvalidInput, "unknown graph kind %q", "blob")
	assert.Equal(t, `INVALID_INPUT: unknown graph kind "blob"`, err.Error())
	assert.Equal(t, `unknown graph kind "blob"`, UserMessage(err))

	cause := errors.New("odd vertex count")
	wrapped := Wrap(ErrCodeInvalidFormat, cause, "line %d", 3)
	assert.Equal(t, "INVALID_FORMAT: line 3: odd vertex count", wrapped.Error())
	assert.Equal(t, "line 3: odd vertex count", UserMessage(wrapped))
	assert.ErrorIs(t, wrapped, cause)

	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
}

func TestGetCodeOutermostWins(t *testing.T) {
	inner := New(ErrCodeNotATree, "graph b")
	outer := Wrap(ErrCodeVerdictMismatch, inner, "verdict mismatch")
	fmtWrapped := fmt.Errorf("bench: %w", outer)

	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, ""},
		{"plain", errors.New("x"), ""},
		{"direct", inner, ErrCodeNotATree},
		{"nested", outer, ErrCodeVerdictMismatch},
		{"fmt wrapped", fmtWrapped, ErrCodeVerdictMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetCode(tt.err))
			if tt.want != "" {
				assert.True(t, Is(tt.err, tt.want))
			}
		})
	}
	assert.False(t, Is(nil, ""))
	assert.False(t, Is(fmtWrapped, ErrCodeNotATree))
}

func TestHTTPStatus(t *testing.T) {
	tests := map[Code]int{
		ErrCodeInvalidInput:    http.StatusBadRequest,
		ErrCodeInvalidGraph:    http.StatusBadRequest,
		ErrCodeInvalidFormat:   http.StatusBadRequest,
		ErrCodeInvalidPath:     http.StatusBadRequest,
		ErrCodeNotATree:        http.StatusUnprocessableEntity,
		ErrCodeFileNotFound:    http.StatusNotFound,
		ErrCodeUnsupported:     http.StatusNotImplemented,
		ErrCodeVerdictMismatch: http.StatusInternalServerError,
		ErrCodeInternal:        http.StatusInternalServerError,
		"":                     http.StatusInternalServerError,
	}
	for code, want := range tests {
		assert.Equal(t, want, HTTPStatus(code), "code %q", code)
	}
}

func TestExitCode(t *testing.T) {
	mismatch := Wrap(ErrCodeVerdictMismatch, &MismatchError{File: "5.g6"}, "verdict mismatch")

	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, ExitInterrupted, ExitCode(fmt.Errorf("bench: %w", context.Canceled)))
	assert.Equal(t, ExitMismatch, ExitCode(fmt.Errorf("bench: %w", mismatch)))
	assert.Equal(t, ExitFailure, ExitCode(New(ErrCodeInvalidPath, "missing")))
	assert.Equal(t, ExitFailure, ExitCode(errors.New("boom")))
}

func TestMismatchError(t *testing.T) {
	assert.Equal(t, "7.g6: graphs 0 and 3 should be isomorphic",
		(&MismatchError{File: "7.g6", I: 0, J: 3, Expected: true}).Error())
	assert.Equal(t, "7.g6: graphs 1 and 2 should be non-isomorphic",
		(&MismatchError{File: "7.g6", I: 1, J: 2}).Error())
	assert.Equal(t, ErrCodeVerdictMismatch, (&MismatchError{}).Code())

	var target *MismatchError
	err := Wrap(ErrCodeVerdictMismatch, &MismatchError{File: "x"}, "benchmark failed")
	if assert.ErrorAs(t, err, &target) {
		assert.Equal(t, "x", target.File)
	}
}
