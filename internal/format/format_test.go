package format_test

import (
	"testing"

	"github.com/sinclairtarget/resultseq/internal/format"
)

func TestAbbrev(t *testing.T) {
	if got := format.Abbrev("hello", 10); got != "hello" {
		t.Errorf("expected \"%s\", but got: \"%s\"", "hello", got)
	}

	if got := format.Abbrev("hello world", 8); got != "hello w…" {
		t.Errorf("expected \"%s\", but got: \"%s\"", "hello w…", got)
	}
}

func TestNumber(t *testing.T) {
	tests := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-42000, "-42,000"},
	}

	for _, test := range tests {
		if got := format.Number(test.n); got != test.expected {
			t.Errorf("expected %s, but got: %s", test.expected, got)
		}
	}
}

func TestPlural(t *testing.T) {
	if got := format.Plural("file", 1); got != "file" {
		t.Errorf("expected \"%s\", but got: \"%s\"", "file", got)
	}

	if got := format.Plural("file", 3); got != "files" {
		t.Errorf("expected \"%s\", but got: \"%s\"", "files", got)
	}
}
