package numerics

import (
	"fmt"
	"math/big"
)

// kind discriminates the closed set of value representations a Number can
// carry.
type kind int

const (
	kindInt kind = iota
	kindUint
	kindFloat
	kindBig
)

// Number is a tagged union over the numeric inputs the selectors accept:
// signed and unsigned machine integers, float64, and arbitrary-precision
// values. Construct one with [FromInt], [FromInt64], [FromUint64],
// [FromFloat64], [FromBigFloat], or [ParseDecimal].
type Number struct {
	kind kind
	i    int64
	u    uint64
	f    float64
	b    *big.Float
}

// FromInt wraps a machine int.
func FromInt(value int) Number {
	return FromInt64(int64(value))
}

// FromInt64 wraps a signed 64-bit integer.
func FromInt64(value int64) Number {
	return Number{kind: kindInt, i: value}
}

// FromUint64 wraps an unsigned 64-bit integer.
func FromUint64(value uint64) Number {
	return Number{kind: kindUint, u: value}
}

// FromFloat64 wraps a float64.
func FromFloat64(value float64) Number {
	return Number{kind: kindFloat, f: value}
}

// FromBigFloat wraps an arbitrary-precision value. The caller must not
// mutate value afterwards.
func FromBigFloat(value *big.Float) Number {
	return Number{kind: kindBig, b: value}
}

// ParseDecimal parses a decimal string (plain or scientific notation, e.g.
// "42", "-1.5", "1e40") into an arbitrary-precision Number.
func ParseDecimal(s string) (Number, error) {
	value, _, err := big.ParseFloat(s, 10, 256, big.ToNearestEven)
	if err != nil {
		return Number{}, fmt.Errorf("error parsing decimal %q: %w", s, err)
	}

	return FromBigFloat(value), nil
}

// String renders the wrapped value, mostly for logs and test failures.
func (n Number) String() string {
	switch n.kind {
	case kindInt:
		return fmt.Sprintf("%d", n.i)
	case kindUint:
		return fmt.Sprintf("%d", n.u)
	case kindFloat:
		return fmt.Sprintf("%g", n.f)
	case kindBig:
		return n.b.Text('g', -1)
	default:
		return "invalid"
	}
}

// leInt reports whether n <= bound. bound is non-negative for every
// threshold the selectors use.
func (n Number) leInt(bound int64) bool {
	switch n.kind {
	case kindInt:
		return n.i <= bound
	case kindUint:
		return n.u <= uint64(bound)
	case kindFloat:
		// Exact comparison: float64(math.MaxInt64) rounds up to 2^63, so a
		// plain float64 compare would let 2^63 pass an inclusive MaxInt64
		// bound it does not satisfy.
		return new(big.Float).SetFloat64(n.f).Cmp(new(big.Float).SetInt64(bound)) <= 0
	default:
		return n.b.Cmp(new(big.Float).SetInt64(bound)) <= 0
	}
}

// ltUint reports whether n < bound.
func (n Number) ltUint(bound uint64) bool {
	switch n.kind {
	case kindInt:
		return n.i < 0 || uint64(n.i) < bound
	case kindUint:
		return n.u < bound
	case kindFloat:
		return n.f < float64(bound)
	default:
		return n.b.Cmp(new(big.Float).SetUint64(bound)) < 0
	}
}

// leFloat reports whether n <= bound.
func (n Number) leFloat(bound float64) bool {
	switch n.kind {
	case kindInt:
		return float64(n.i) <= bound
	case kindUint:
		return float64(n.u) <= bound
	case kindFloat:
		return n.f <= bound
	default:
		return n.b.Cmp(big.NewFloat(bound)) <= 0
	}
}
