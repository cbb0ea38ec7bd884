package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFromDecimalRoundsHalfAwayFromZero(t *testing.T) {
	cases := map[string]int64{
		"74314.8": 74315,
		"74314.4": 74314,
		"2.5":     3,
		"0":       0,
	}
	for input, want := range cases {
		got := FromDecimal(decimal.RequireFromString(input)).Amount()
		if got != want {
			t.Fatalf("FromDecimal(%s) = %d, want %d", input, got, want)
		}
	}
}

func TestAddDoesNotMutate(t *testing.T) {
	a := New(100)
	b := New(250)
	sum := a.Add(b)
	if sum.Amount() != 350 {
		t.Fatalf("expected 350, got %d", sum.Amount())
	}
	if a.Amount() != 100 || b.Amount() != 250 {
		t.Fatalf("operands mutated: %d, %d", a.Amount(), b.Amount())
	}
}

func TestNewClampsNegative(t *testing.T) {
	if got := New(-5).Amount(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestFormat(t *testing.T) {
	f := NewFormatter("$", "en")
	cases := map[int64]string{
		196392: "$1,963.92",
		74315:  "$743.15",
		5:      "$0.05",
		0:      "$0.00",
	}
	for units, want := range cases {
		if got := f.Format(New(units)); got != want {
			t.Fatalf("Format(%d) = %q, want %q", units, got, want)
		}
	}
}

func TestFormatterSymbolConfigurable(t *testing.T) {
	f := NewFormatter("R$", "en")
	if got := f.Format(New(123456)); got != "R$1,234.56" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestFormatterFallsBackOnBadLocale(t *testing.T) {
	f := NewFormatter("$", "!!invalid!!")
	if got := f.Format(New(100000)); got != "$1,000.00" {
		t.Fatalf("unexpected format: %q", got)
	}
}
