package errors

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ValidateFormat checks that format is one of allowed.
func ValidateFormat(format string, allowed []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(allowed, format) {
		return New(ErrCodeInvalidFormat, "unknown format %q (allowed: %s)", format, strings.Join(allowed, ", "))
	}
	return nil
}

// ValidateMark checks the character used to mark motif cells in text
// output. It must be a single printable rune that cannot be confused with
// a pixel.
func ValidateMark(mark string) error {
	if utf8.RuneCountInString(mark) != 1 {
		return New(ErrCodeInvalidInput, "mark must be a single character, got %q", mark)
	}
	r, _ := utf8.DecodeRuneInString(mark)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return New(ErrCodeInvalidInput, "mark must be printable, got %q", mark)
	}
	if r == '#' || r == '.' {
		return New(ErrCodeInvalidInput, "mark %q is indistinguishable from a pixel", mark)
	}
	return nil
}

// ValidateInputSize rejects empty or oversized tile input.
func ValidateInputSize(size, limit int64) error {
	if size == 0 {
		return New(ErrCodeInvalidInput, "input is empty")
	}
	if limit > 0 && size > limit {
		return New(ErrCodeInvalidInput, "input too large (%d bytes, max %d)", size, limit)
	}
	return nil
}

// ValidatePath validates a user-supplied file path: not empty, no control
// characters.
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}
	return nil
}

// ValidateScale checks the PNG pixel scale factor.
func ValidateScale(scale int) error {
	if scale < 1 || scale > 64 {
		return New(ErrCodeInvalidInput, "scale must be between 1 and 64, got %d", scale)
	}
	return nil
}
