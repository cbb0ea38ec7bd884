package pricing

import (
	"errors"
	"testing"
)

const unitPrice = 35388

func TestEvaluatePercentage(t *testing.T) {
	cond := Percentage(30, 2)

	// 35388 * 3 * 0.7 = 74314.8, rounds half away from zero.
	if got := Evaluate(unitPrice, 3, cond).Amount(); got != 74315 {
		t.Fatalf("quantity above minimum: got %d, want 74315", got)
	}
	// Quantity equal to the minimum pays full price but stays a candidate.
	if got := Evaluate(unitPrice, 2, cond).Amount(); got != 70776 {
		t.Fatalf("quantity at minimum: got %d, want 70776", got)
	}
	if got := Evaluate(unitPrice, 1, cond).Amount(); got != 35388 {
		t.Fatalf("quantity below minimum: got %d, want 35388", got)
	}
}

func TestEvaluatePercentageFullDiscount(t *testing.T) {
	if got := Evaluate(unitPrice, 3, Percentage(100, 0)).Amount(); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestEvaluateQuantityTier(t *testing.T) {
	cond := QuantityTier(2)
	cases := map[int64]int64{
		1: 35388,  // below the tier size the formula degenerates to full price
		4: 70776,  // two full groups, pay for two units
		5: 106164, // two groups plus one remainder unit
	}
	for qty, want := range cases {
		if got := Evaluate(unitPrice, qty, cond).Amount(); got != want {
			t.Fatalf("quantity %d: got %d, want %d", qty, got, want)
		}
	}
}

func TestEvaluateQuantityTierLargerGroup(t *testing.T) {
	cond := QuantityTier(4)
	// 9 = two groups of 4 (pay 2 each) + 1 remainder.
	if got := Evaluate(1000, 9, cond).Amount(); got != 5000 {
		t.Fatalf("got %d, want 5000", got)
	}
}

func TestEvaluateUnknownKindChargesFullPrice(t *testing.T) {
	if got := Evaluate(unitPrice, 2, Condition{}).Amount(); got != 70776 {
		t.Fatalf("got %d, want 70776", got)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		cond Condition
		want error
	}{
		{"valid percentage", Percentage(30, 2), nil},
		{"zero percentage", Percentage(0, 0), nil},
		{"percentage above 100", Percentage(101, 0), ErrInvalidPercentage},
		{"negative percentage", Percentage(-1, 0), ErrInvalidPercentage},
		{"negative minimum", Percentage(10, -1), ErrInvalidMinimum},
		{"valid tier", QuantityTier(2), nil},
		{"zero tier", QuantityTier(0), ErrInvalidTierQuantity},
		{"negative tier", QuantityTier(-2), ErrInvalidTierQuantity},
		{"odd tier", QuantityTier(3), ErrInvalidTierQuantity},
		{"unknown kind", Condition{Kind: "bogus"}, ErrUnknownKind},
	}
	for _, tc := range cases {
		err := tc.cond.Validate()
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}
