package validation

import (
	"strings"
	"testing"

	"task-manager/internal/config"
)

func TestValidator_IsNonEmptyString(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Empty string", "", false},
		{"Whitespace only", "   ", false},
		{"Tab and newline", "\t\n", false},
		{"Valid string", "hello", true},
		{"String with leading/trailing spaces", "  hello  ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := validator.IsNonEmptyString(tt.input)
			if result != tt.expected {
				t.Errorf("IsNonEmptyString(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestValidator_IsWithinMaxLength(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		name     string
		input    string
		max      int
		expected bool
	}{
		{"Under limit", "abc", 5, true},
		{"At limit", "abcde", 5, true},
		{"Over limit", "abcdef", 5, false},
		{"Surrounding spaces ignored", "  abcde  ", 5, true},
		{"Multibyte counted as characters", "úkolů", 5, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validator.IsWithinMaxLength(tt.input, tt.max); got != tt.expected {
				t.Errorf("IsWithinMaxLength(%q, %d) = %v, expected %v", tt.input, tt.max, got, tt.expected)
			}
		})
	}
}

func TestValidator_ParseInt64(t *testing.T) {
	validator := NewValidator(nil)

	tests := []struct {
		input  string
		want   int64
		wantOK bool
	}{
		{"1", 1, true},
		{" 42 ", 42, true},
		{"-3", -3, true},
		{"abc", 0, false},
		{"1.5", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := validator.ParseInt64(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseInt64(%q) = %d, %v; want %d, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestValidator_IsValidTaskID(t *testing.T) {
	validator := NewValidator(nil)
	if validator.IsValidTaskID(0) || validator.IsValidTaskID(-1) {
		t.Errorf("non-positive ids must be invalid")
	}
	if !validator.IsValidTaskID(1) {
		t.Errorf("positive ids must be valid")
	}
}

func TestValidator_TitleMaxLength(t *testing.T) {
	if got := NewValidator(nil).TitleMaxLength(); got != 255 {
		t.Errorf("default TitleMaxLength = %d, want 255", got)
	}

	cfg := config.NewConfig()
	cfg.Validation.TitleMaxLength = 20
	if got := NewValidator(cfg).TitleMaxLength(); got != 20 {
		t.Errorf("configured TitleMaxLength = %d, want 20", got)
	}

	cfg.Validation.TitleMaxLength = 0
	if got := NewValidator(cfg).TitleMaxLength(); got != 255 {
		t.Errorf("zero TitleMaxLength should fall back to 255, got %d", got)
	}
}

func TestValidator_TrimAndValidateString(t *testing.T) {
	if got := NewValidator(nil).TrimAndValidateString("  hi there \n"); got != "hi there" {
		t.Errorf("TrimAndValidateString = %q", got)
	}
	if got := NewValidator(nil).TrimAndValidateString(strings.Repeat(" ", 3)); got != "" {
		t.Errorf("TrimAndValidateString of spaces = %q", got)
	}
}
