package errors

import (
	"strings"
	"unicode"
)

// ValidatePath validates a dataset or output path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}

// ValidateRange validates a node-count sweep start..end with the given step.
func ValidateRange(start, end, step int) error {
	if start < 1 {
		return New(ErrCodeInvalidInput, "start must be at least 1, got %d", start)
	}
	if end < start {
		return New(ErrCodeInvalidInput, "end (%d) must not be smaller than start (%d)", end, start)
	}
	if step < 1 {
		return New(ErrCodeInvalidInput, "step must be at least 1, got %d", step)
	}
	return nil
}

// ValidateProbability validates an edge probability or density.
func ValidateProbability(name string, p float64) error {
	if p < 0 || p > 1 || p != p {
		return New(ErrCodeInvalidInput, "%s must be within [0, 1], got %v", name, p)
	}
	return nil
}

// ValidatePositive validates a count that must be at least 1.
func ValidatePositive(name string, v int) error {
	if v < 1 {
		return New(ErrCodeInvalidInput, "%s must be at least 1, got %d", name, v)
	}
	return nil
}
