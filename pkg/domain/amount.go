package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a fixed-point monetary value counted in micro-units (six decimal
// places). All arithmetic is integer-only so results are deterministic across
// platforms; there is no floating point anywhere in the money path.
type Amount int64

// AmountScale is the number of micro-units in one whole unit.
const AmountScale = 1_000_000

// Units returns the Amount worth n whole units.
func Units(n int64) Amount {
	return Amount(n * AmountScale)
}

func (a Amount) IsZero() bool     { return a == 0 }
func (a Amount) IsNegative() bool { return a < 0 }

// String renders the amount as a decimal number of whole units, trimming
// trailing zeros ("10", "0.5", "0.000001").
func (a Amount) String() string {
	neg := a < 0
	v := int64(a)
	if neg {
		v = -v
	}
	whole := v / AmountScale
	frac := v % AmountScale
	s := strconv.FormatInt(whole, 10)
	if frac != 0 {
		s += strings.TrimRight(fmt.Sprintf(".%06d", frac), "0")
	}
	if neg {
		s = "-" + s
	}
	return s
}
