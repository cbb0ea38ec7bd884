package pricing

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kasir-id/backend-kasir/internal/money"
)

var (
	// ErrInvalidPercentage is returned when a percentage lies outside [0, 100].
	ErrInvalidPercentage = errors.New("percentage must be between 0 and 100")
	// ErrInvalidMinimum is returned for a negative minimum quantity.
	ErrInvalidMinimum = errors.New("minimum must not be negative")
	// ErrInvalidTierQuantity is returned when a tier size is not a positive even number.
	ErrInvalidTierQuantity = errors.New("tier quantity must be a positive even number")
	// ErrUnknownKind is returned for a condition without a recognised kind.
	ErrUnknownKind = errors.New("unknown condition kind")
)

// Kind discriminates the condition variants.
type Kind string

const (
	// KindPercentage discounts a flat percentage once the quantity exceeds a minimum.
	KindPercentage Kind = "percentage"
	// KindQuantityTier charges N/2 units out of every complete group of N.
	KindQuantityTier Kind = "quantity_tier"
)

// Condition is one discount rule attached to a line item. Kind selects which
// fields are meaningful; use the constructors rather than building literals.
type Condition struct {
	Kind       Kind  `json:"kind"`
	Percentage int64 `json:"percentage,omitempty"`
	Minimum    int64 `json:"minimum,omitempty"`
	Quantity   int64 `json:"quantity,omitempty"`
}

// Percentage builds a percentage-off condition that applies only when the
// item quantity is strictly greater than minimum.
func Percentage(percentage, minimum int64) Condition {
	return Condition{Kind: KindPercentage, Percentage: percentage, Minimum: minimum}
}

// QuantityTier builds a "pay for half of every full group of N" condition.
func QuantityTier(quantity int64) Condition {
	return Condition{Kind: KindQuantityTier, Quantity: quantity}
}

// Validate checks the variant's parameters. Odd tier sizes are rejected: the
// promotion is defined as N/2 paid units per group, which has no agreed
// meaning for odd N.
func (c Condition) Validate() error {
	switch c.Kind {
	case KindPercentage:
		if c.Percentage < 0 || c.Percentage > 100 {
			return ErrInvalidPercentage
		}
		if c.Minimum < 0 {
			return ErrInvalidMinimum
		}
		return nil
	case KindQuantityTier:
		if c.Quantity <= 0 || c.Quantity%2 != 0 {
			return ErrInvalidTierQuantity
		}
		return nil
	default:
		return ErrUnknownKind
	}
}

var hundred = decimal.NewFromInt(100)

// Evaluate returns the price payable for qty units at unitPrice under the
// condition. A condition that does not apply yields the undiscounted price,
// so it still competes as a candidate when the best of several is picked and
// can never make the outcome worse than having no conditions at all.
func Evaluate(unitPrice, qty int64, c Condition) money.Money {
	full := money.New(unitPrice * qty)
	switch c.Kind {
	case KindPercentage:
		if qty <= c.Minimum {
			return full
		}
		gross := decimal.NewFromInt(unitPrice * qty)
		factor := hundred.Sub(decimal.NewFromInt(c.Percentage)).Div(hundred)
		return money.FromDecimal(gross.Mul(factor))
	case KindQuantityTier:
		if c.Quantity <= 0 {
			return full
		}
		// Full groups pay for half their units; the remainder pays in full.
		// With qty below the tier size there are no groups and the formula
		// degenerates to the undiscounted price.
		groups := qty / c.Quantity
		remainder := qty % c.Quantity
		paid := groups*(c.Quantity/2) + remainder
		return money.New(unitPrice * paid)
	default:
		return full
	}
}
