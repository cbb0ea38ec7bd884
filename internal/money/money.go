package money

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money is a non-negative amount expressed in integer minor units (cents).
// All arithmetic stays in integers; fractional intermediate results from
// discount math are rounded exactly once, at construction.
type Money struct {
	units int64
}

// Zero is the empty amount.
var Zero = Money{}

// New builds a Money from minor units. Negative inputs clamp to zero.
func New(units int64) Money {
	if units < 0 {
		units = 0
	}
	return Money{units: units}
}

// FromDecimal rounds a possibly-fractional amount of minor units to the
// nearest integer, half away from zero (74314.8 becomes 74315).
func FromDecimal(d decimal.Decimal) Money {
	return New(d.Round(0).IntPart())
}

// Add returns the sum of both amounts. Neither operand is mutated.
func (m Money) Add(other Money) Money {
	return Money{units: m.units + other.units}
}

// Amount returns the underlying minor-unit integer.
func (m Money) Amount() int64 {
	return m.units
}

// IsZero reports whether the amount is empty.
func (m Money) IsZero() bool {
	return m.units == 0
}

// LessThan reports whether m is strictly smaller than other.
func (m Money) LessThan(other Money) bool {
	return m.units < other.units
}

// String renders the amount with the default dollar formatter.
func (m Money) String() string {
	return DefaultFormatter.Format(m)
}

// Formatter renders Money values for a currency symbol and locale, with
// locale-aware thousands separators and two fraction digits.
type Formatter struct {
	Symbol  string
	printer *message.Printer
}

// DefaultFormatter renders en-locale dollar amounts.
var DefaultFormatter = NewFormatter("$", "en")

// NewFormatter builds a formatter for the given symbol and BCP 47 locale tag.
// Unparseable tags fall back to English.
func NewFormatter(symbol, locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return Formatter{Symbol: symbol, printer: message.NewPrinter(tag)}
}

// Format renders the amount, e.g. 196392 minor units as "$1,963.92".
func (f Formatter) Format(m Money) string {
	printer := f.printer
	if printer == nil {
		printer = DefaultFormatter.printer
	}
	whole := m.units / 100
	fraction := m.units % 100
	return fmt.Sprintf("%s%s.%02d", f.Symbol, printer.Sprintf("%d", whole), fraction)
}
