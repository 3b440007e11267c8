// Package u256 provides a checked 256-bit unsigned integer primitive.
//
// It wraps github.com/holiman/uint256, the library the rest of the
// on-chain-parity Go ecosystem reaches for when it needs an EVM-width
// integer without the allocation cost of math/big for every operation.
// Every arithmetic method here is checked: on overflow, underflow, or
// division by zero it returns one of the sentinel errors declared below
// instead of wrapping silently, matching the full 256-bit width the
// pool math needs.
package u256

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	// ErrOverflow is returned when an unsigned add/mul would exceed 2^256-1.
	ErrOverflow = errors.New("u256: overflow")
	// ErrUnderflow is returned when an unsigned subtraction would go negative.
	ErrUnderflow = errors.New("u256: underflow")
	// ErrDivByZero is returned by Div/MulDiv when the divisor is zero.
	ErrDivByZero = errors.New("u256: division by zero")
)

// Int is a checked, immutable-by-convention 256-bit unsigned integer.
// Callers never get a pointer into the internal representation; every
// operation returns a new value.
type Int struct {
	v uint256.Int
}

// Zero is the additive identity.
var Zero = Int{}

// One is the multiplicative identity.
var One = FromUint64(1)

// FromUint64 builds an Int from a uint64.
func FromUint64(x uint64) Int {
	var z Int
	z.v.SetUint64(x)
	return z
}

// FromBig builds an Int from a non-negative math/big.Int. It returns
// ErrOverflow if b is negative or does not fit in 256 bits.
func FromBig(b *big.Int) (Int, error) {
	if b.Sign() < 0 {
		return Zero, ErrOverflow
	}
	var z Int
	overflow := z.v.SetFromBig(b)
	if overflow {
		return Zero, ErrOverflow
	}
	return z, nil
}

// MustFromDecimalString builds an Int from a base-10 string, panicking on
// malformed input. It exists for constant tables where the string is a
// compile-time literal.
func MustFromDecimalString(s string) Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("u256: invalid decimal literal " + s)
	}
	z, err := FromBig(b)
	if err != nil {
		panic(err)
	}
	return z
}

// ToBig returns the value as a math/big.Int.
func (z Int) ToBig() *big.Int {
	return z.v.ToBig()
}

// String renders the base-10 representation.
func (z Int) String() string {
	return z.v.ToBig().String()
}

// IsZero reports whether z is 0.
func (z Int) IsZero() bool {
	return z.v.IsZero()
}

// Cmp returns -1, 0 or 1 as z is less than, equal to, or greater than x.
func (z Int) Cmp(x Int) int {
	return z.v.Cmp(&x.v)
}

// Lt reports whether z < x.
func (z Int) Lt(x Int) bool {
	return z.v.Lt(&x.v)
}

// Lte reports whether z <= x.
func (z Int) Lte(x Int) bool {
	return !z.v.Gt(&x.v)
}

// Gt reports whether z > x.
func (z Int) Gt(x Int) bool {
	return z.v.Gt(&x.v)
}

// Gte reports whether z >= x.
func (z Int) Gte(x Int) bool {
	return !z.v.Lt(&x.v)
}

// Eq reports whether z == x.
func (z Int) Eq(x Int) bool {
	return z.v.Eq(&x.v)
}

// Add returns z + x, or ErrOverflow if the sum exceeds 2^256-1.
func (z Int) Add(x Int) (Int, error) {
	var out Int
	_, overflow := out.v.AddOverflow(&z.v, &x.v)
	if overflow {
		return Zero, ErrOverflow
	}
	return out, nil
}

// Sub returns z - x, or ErrUnderflow if x > z.
func (z Int) Sub(x Int) (Int, error) {
	if z.Lt(x) {
		return Zero, ErrUnderflow
	}
	var out Int
	out.v.Sub(&z.v, &x.v)
	return out, nil
}

// Mul returns z * x, or ErrOverflow if the product exceeds 2^256-1.
func (z Int) Mul(x Int) (Int, error) {
	var out Int
	_, overflow := out.v.MulOverflow(&z.v, &x.v)
	if overflow {
		return Zero, ErrOverflow
	}
	return out, nil
}

// Div returns floor(z / x), or ErrDivByZero if x is zero.
func (z Int) Div(x Int) (Int, error) {
	if x.IsZero() {
		return Zero, ErrDivByZero
	}
	var out Int
	out.v.Div(&z.v, &x.v)
	return out, nil
}

// Mod returns z mod x, or ErrDivByZero if x is zero.
func (z Int) Mod(x Int) (Int, error) {
	if x.IsZero() {
		return Zero, ErrDivByZero
	}
	var out Int
	out.v.Mod(&z.v, &x.v)
	return out, nil
}

// MulDiv returns floor(a*b/c) computed without intermediate 256-bit
// overflow, by widening through math/big for the multiply-then-divide
// rather than trusting that a*b fits back in 256 bits before dividing.
func MulDiv(a, b, c Int) (Int, error) {
	if c.IsZero() {
		return Zero, ErrDivByZero
	}
	wide := new(big.Int).Mul(a.ToBig(), b.ToBig())
	wide.Div(wide, c.ToBig())
	out, err := FromBig(wide)
	if err != nil {
		return Zero, ErrOverflow
	}
	return out, nil
}

// MulDivUp returns ceil(a*b/c), i.e. MulDiv rounded toward positive
// infinity instead of truncated.
func MulDivUp(a, b, c Int) (Int, error) {
	if c.IsZero() {
		return Zero, ErrDivByZero
	}
	wide := new(big.Int).Mul(a.ToBig(), b.ToBig())
	if wide.Sign() == 0 {
		return Zero, nil
	}
	cb := c.ToBig()
	wide.Sub(wide, big.NewInt(1))
	wide.Div(wide, cb)
	wide.Add(wide, big.NewInt(1))
	out, err := FromBig(wide)
	if err != nil {
		return Zero, ErrOverflow
	}
	return out, nil
}
