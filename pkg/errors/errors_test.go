package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "test message: %s", "value")

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidInput)
	}

	if err.Message != "test message: value" {
		t.Errorf("Message = %v, want %v", err.Message, "test message: value")
	}

	expected := "INVALID_INPUT: test message: value"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeInvalidTile, cause, "failed to parse")

	if err.Code != ErrCodeInvalidTile {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidTile)
	}

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}

	// Test Unwrap
	unwrapped := errors.Unwrap(err)
	if unwrapped != cause {
		t.Errorf("Unwrap() = %v, want %v", unwrapped, cause)
	}

	// Test errors.Is with wrapped error
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{
			name:     "matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeInvalidInput,
			expected: true,
		},
		{
			name:     "non-matching code",
			err:      New(ErrCodeInvalidInput, "test"),
			code:     ErrCodeMotifNotFound,
			expected: false,
		},
		{
			name:     "wrapped error",
			err:      Wrap(ErrCodeAdjacency, New(ErrCodeInvalidInput, "inner"), "outer"),
			code:     ErrCodeAdjacency,
			expected: true,
		},
		{
			name:     "non-Error type",
			err:      errors.New("plain error"),
			code:     ErrCodeInvalidInput,
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			code:     ErrCodeInvalidInput,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidFormat, "test"),
			expected: ErrCodeInvalidFormat,
		},
		{
			name:     "plain error",
			err:      errors.New("plain"),
			expected: "",
		},
		{
			name:     "nil",
			err:      nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetCode(tt.err); got != tt.expected {
				t.Errorf("GetCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "Error type",
			err:      New(ErrCodeInvalidInput, "friendly message"),
			expected: "friendly message",
		},
		{
			name:     "plain error",
			err:      errors.New("plain error"),
			expected: "plain error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.expected {
				t.Errorf("UserMessage() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestUserMessageIncludesCause(t *testing.T) {
	err := Wrap(ErrCodeInvalidTile, errors.New("row 3: illegal pixel"), "tile 2311")
	expected := "tile 2311: row 3: illegal pixel"
	if got := UserMessage(err); got != expected {
		t.Errorf("UserMessage() = %v, want %v", got, expected)
	}
}

func TestClassify(t *testing.T) {
	errShape := errors.New("bad shape")
	errLost := errors.New("lost")
	rules := []Rule{
		{Code: ErrCodeInvalidTile, Targets: []error{errShape}},
		{Code: ErrCodeAdjacency, Targets: []error{errLost}},
	}

	tests := []struct {
		name     string
		err      error
		expected Code
	}{
		{"first rule", fmt.Errorf("tile 7: %w", errShape), ErrCodeInvalidTile},
		{"second rule", errLost, ErrCodeAdjacency},
		{"unmatched", errors.New("boom"), ErrCodeInternal},
		{"already coded", New(ErrCodeInvalidFormat, "x"), ErrCodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err, rules, "solving")
			if code := GetCode(got); code != tt.expected {
				t.Errorf("GetCode(Classify()) = %v, want %v", code, tt.expected)
			}
			if !errors.Is(got, tt.err) {
				t.Errorf("Classify() lost the cause %v", tt.err)
			}
		})
	}

	if Classify(nil, rules, "solving") != nil {
		t.Error("Classify(nil) != nil")
	}
}
