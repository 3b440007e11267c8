// Package i256 provides a checked 256-bit signed integer primitive.
//
// github.com/holiman/uint256 only represents unsigned values, so the
// signed half of the scalar layer is built directly on math/big.Int,
// guarded by a symmetric range check at 256 bits (minVal / maxVal).
package i256

import (
	"errors"
	"math/big"
)

var (
	// ErrOverflow is returned when a signed add/sub/mul would leave
	// [-2^255, 2^255-1].
	ErrOverflow = errors.New("i256: overflow")
	// ErrDivByZero is returned by Div/Mod when the divisor is zero.
	ErrDivByZero = errors.New("i256: division by zero")
)

var (
	minVal = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
	maxVal = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
)

// Int is a checked, immutable-by-convention 256-bit signed integer.
type Int struct {
	v big.Int
}

// Zero is the additive identity.
var Zero = Int{}

// One is the multiplicative identity.
var One = FromInt64(1)

// FromInt64 builds an Int from an int64.
func FromInt64(x int64) Int {
	var z Int
	z.v.SetInt64(x)
	return z
}

// FromBig builds an Int from a math/big.Int, checking the symmetric
// [-2^255, 2^255-1] range.
func FromBig(b *big.Int) (Int, error) {
	if b.Cmp(minVal) < 0 || b.Cmp(maxVal) > 0 {
		return Zero, ErrOverflow
	}
	var z Int
	z.v.Set(b)
	return z, nil
}

// MustFromDecimalString builds an Int from a base-10 string, panicking on
// malformed input or out-of-range literals. Used only for compile-time
// constant tables.
func MustFromDecimalString(s string) Int {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("i256: invalid decimal literal " + s)
	}
	z, err := FromBig(b)
	if err != nil {
		panic(err)
	}
	return z
}

// ToBig returns the value as a math/big.Int.
func (z Int) ToBig() *big.Int {
	return new(big.Int).Set(&z.v)
}

// String renders the base-10 representation.
func (z Int) String() string {
	return z.v.String()
}

// Sign returns -1, 0 or 1 depending on the sign of z.
func (z Int) Sign() int {
	return z.v.Sign()
}

// IsZero reports whether z is 0.
func (z Int) IsZero() bool {
	return z.v.Sign() == 0
}

// IsNegative reports whether z is strictly negative.
func (z Int) IsNegative() bool {
	return z.v.Sign() < 0
}

// Cmp returns -1, 0 or 1 as z is less than, equal to, or greater than x.
func (z Int) Cmp(x Int) int {
	return z.v.Cmp(&x.v)
}

// Lt reports whether z < x.
func (z Int) Lt(x Int) bool {
	return z.Cmp(x) < 0
}

// Gt reports whether z > x.
func (z Int) Gt(x Int) bool {
	return z.Cmp(x) > 0
}

// Neg returns -z, or ErrOverflow if z is minVal, -2^255 (whose negation
// does not fit back in the range).
func (z Int) Neg() (Int, error) {
	var out Int
	out.v.Neg(&z.v)
	return FromBig(&out.v)
}

// Abs returns the absolute value of z as an unsigned magnitude.
func (z Int) Abs() *big.Int {
	return new(big.Int).Abs(&z.v)
}

// Add returns z + x, checked against the signed range.
func (z Int) Add(x Int) (Int, error) {
	sum := new(big.Int).Add(&z.v, &x.v)
	return FromBig(sum)
}

// Sub returns z - x, checked against the signed range.
func (z Int) Sub(x Int) (Int, error) {
	diff := new(big.Int).Sub(&z.v, &x.v)
	return FromBig(diff)
}

// Mul returns z * x, checked against the signed range.
func (z Int) Mul(x Int) (Int, error) {
	prod := new(big.Int).Mul(&z.v, &x.v)
	return FromBig(prod)
}

// Div returns the truncated (toward zero) quotient z / x, or
// ErrDivByZero if x is zero.
func (z Int) Div(x Int) (Int, error) {
	if x.IsZero() {
		return Zero, ErrDivByZero
	}
	q := new(big.Int).Quo(&z.v, &x.v)
	return FromBig(q)
}

// Mod returns the remainder of the truncated division z / x (same sign
// as z), or ErrDivByZero if x is zero.
func (z Int) Mod(x Int) (Int, error) {
	if x.IsZero() {
		return Zero, ErrDivByZero
	}
	r := new(big.Int).Rem(&z.v, &x.v)
	return FromBig(r)
}
