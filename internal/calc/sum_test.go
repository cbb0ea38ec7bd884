package calc

import (
	"errors"
	"testing"
)

func TestSum(t *testing.T) {
	got, err := Sum("2", "3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}

func TestSumNegativeOperands(t *testing.T) {
	got, err := Sum("-7", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != -5 {
		t.Fatalf("expected -5, got %d", got)
	}
}

func TestSumTrimsWhitespace(t *testing.T) {
	got, err := Sum(" 1 ", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestSumRejectsBadInput(t *testing.T) {
	for _, pair := range [][2]string{
		{"a", "2"},
		{"1", "b"},
		{"", ""},
		{"1.5", "2"},
	} {
		if _, err := Sum(pair[0], pair[1]); !errors.Is(err, ErrBadInput) {
			t.Fatalf("Sum(%q, %q): expected ErrBadInput, got %v", pair[0], pair[1], err)
		}
	}
}
