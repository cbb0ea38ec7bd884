// Package calc bundles small arithmetic helpers exposed to external callers.
// Nothing in the cart engine consumes it.
package calc

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrBadInput is returned when an operand does not parse as an integer.
var ErrBadInput = errors.New("please check your input")

// Sum parses both operands as base-10 integers and returns their sum.
func Sum(a, b string) (int, error) {
	x, err := strconv.Atoi(strings.TrimSpace(a))
	if err != nil {
		return 0, fmt.Errorf("first operand %q: %w", a, ErrBadInput)
	}
	y, err := strconv.Atoi(strings.TrimSpace(b))
	if err != nil {
		return 0, fmt.Errorf("second operand %q: %w", b, ErrBadInput)
	}
	return x + y, nil
}
