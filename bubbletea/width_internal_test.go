package bubbletea

import "testing"

func TestTruncateToWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		maxWidth int
		expected string
	}{
		{name: "fits exactly", input: "hello", maxWidth: 5, expected: "hello"},
		{name: "shorter than budget", input: "hi", maxWidth: 5, expected: "hi"},
		{name: "truncates plain text", input: "hello world", maxWidth: 5, expected: "hello"},
		{name: "zero budget disables truncation", input: "hello", maxWidth: 0, expected: "hello"},
		{name: "tab counts as expansion to next stop", input: "\thello", maxWidth: 8, expected: "\t"},
		{name: "tab then text within budget", input: "\tok", maxWidth: 10, expected: "\tok"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := truncateToWidth(tt.input, tt.maxWidth)
			if got != tt.expected {
				t.Errorf("truncateToWidth(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.expected)
			}
		})
	}
}
