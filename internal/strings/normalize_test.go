package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: " \n\t ", want: ""},
		{name: "single token", input: "milk", want: "milk"},
		{name: "collapses spaces", input: "  buy   more  milk ", want: "buy more milk"},
		{name: "collapses newlines", input: "one\n\n two\tthree", want: "one two three"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{input: "done", want: "done"},
		{input: " Done ", want: "done"},
		{input: "In Progress", want: "in_progress"},
		{input: "in-progress", want: "in_progress"},
		{input: "IN_PROGRESS", want: "in_progress"},
		{input: "updated  at", want: "updated_at"},
		{input: "", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			if got := NormalizeToken(tc.input); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := NormalizeNewlines(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("body\r\n\n"); got != "body" {
		t.Fatalf("unexpected result %q", got)
	}
	if got := TrimTrailingNewlines("body\n\ttext"); got != "body\n\ttext" {
		t.Fatalf("interior newline should be kept, got %q", got)
	}
}
