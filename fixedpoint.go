package weightedpoolmath

import (
	"github.com/shopspring/decimal"

	"github.com/CoinSummer/weighted-poolmath/internal/u256"
)

// fixedOne is ONE = 10^18, the raw integer representing 1.0 in Fixed18.
var fixedOne = u256.FromUint64(1_000_000_000_000_000_000)

// Fixed18 is an 18-decimal unsigned fixed-point number: its semantic
// value is raw/10^18. It is immutable; every operation returns a new
// value, backed by the checked 256-bit primitive in internal/u256.
type Fixed18 struct {
	raw u256.Int
}

// ZeroFixed18 is the additive identity.
var ZeroFixed18 = Fixed18{}

// OneFixed18 represents the value 1.0.
var OneFixed18 = Fixed18{raw: fixedOne}

// NewFixed18FromRaw builds a Fixed18 directly from its raw 10^18-scaled
// integer representation.
func NewFixed18FromRaw(raw u256.Int) Fixed18 {
	return Fixed18{raw: raw}
}

// NewFixed18FromUint64 builds a Fixed18 representing the whole number n.
func NewFixed18FromUint64(n uint64) (Fixed18, error) {
	scaled, err := u256.FromUint64(n).Mul(fixedOne)
	if err != nil {
		return ZeroFixed18, err
	}
	return Fixed18{raw: scaled}, nil
}

// Fixed18FromDecimal builds a Fixed18 from a shopspring/decimal value.
func Fixed18FromDecimal(d decimal.Decimal) (Fixed18, error) {
	scaled := d.Shift(18).Truncate(0)
	raw, err := u256.FromBig(scaled.BigInt())
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}

// Decimal renders the Fixed18 as a shopspring/decimal value.
func (f Fixed18) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(f.raw.ToBig(), -18)
}

// String renders the raw 10^18-scaled integer rather than a rounded
// human value.
func (f Fixed18) String() string {
	return f.raw.String()
}

// Raw returns the underlying 10^18-scaled integer.
func (f Fixed18) Raw() u256.Int {
	return f.raw
}

// IsZero reports whether f is 0.
func (f Fixed18) IsZero() bool {
	return f.raw.IsZero()
}

// Cmp, Lt, Lte, Gt, Gte, Eq delegate straight to the raw integer: Fixed18
// values compare the same way regardless of scale since they all share
// the same 10^18 scale.
func (f Fixed18) Cmp(x Fixed18) int   { return f.raw.Cmp(x.raw) }
func (f Fixed18) Lt(x Fixed18) bool   { return f.raw.Lt(x.raw) }
func (f Fixed18) Lte(x Fixed18) bool  { return f.raw.Lte(x.raw) }
func (f Fixed18) Gt(x Fixed18) bool   { return f.raw.Gt(x.raw) }
func (f Fixed18) Gte(x Fixed18) bool  { return f.raw.Gte(x.raw) }
func (f Fixed18) Eq(x Fixed18) bool   { return f.raw.Eq(x.raw) }

// Add returns a + b, checked for overflow. Fixed-point addition needs no
// rescaling since both operands already share the 10^18 scale.
func Add(a, b Fixed18) (Fixed18, error) {
	raw, err := a.raw.Add(b.raw)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}

// Sub returns a - b, or ErrUnderflow if b > a.
func Sub(a, b Fixed18) (Fixed18, error) {
	raw, err := a.raw.Sub(b.raw)
	if err != nil {
		return ZeroFixed18, ErrUnderflow
	}
	return Fixed18{raw: raw}, nil
}

// MulDown returns floor(a*b / ONE). Fails with ErrOverflow if the
// intermediate product a*b exceeds 2^256-1.
func MulDown(a, b Fixed18) (Fixed18, error) {
	product, err := a.raw.Mul(b.raw)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	raw, err := product.Div(fixedOne)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}

// MulUp returns ceil(a*b / ONE): 0 if the product is 0, otherwise
// floor((a*b-1)/ONE) + 1.
func MulUp(a, b Fixed18) (Fixed18, error) {
	if a.IsZero() || b.IsZero() {
		return ZeroFixed18, nil
	}
	raw, err := u256.MulDivUp(a.raw, b.raw, fixedOne)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}

// DivDown returns floor(a*ONE / b). A zero a returns 0 without looking
// at b; otherwise it fails with ErrDivByZero if b is 0.
func DivDown(a, b Fixed18) (Fixed18, error) {
	if a.IsZero() {
		return ZeroFixed18, nil
	}
	if b.IsZero() {
		return ZeroFixed18, ErrDivByZero
	}
	raw, err := u256.MulDiv(a.raw, fixedOne, b.raw)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}

// DivUp returns ceil(a*ONE / b). A zero a returns 0 without looking
// at b; otherwise it fails with ErrDivByZero if b is 0.
func DivUp(a, b Fixed18) (Fixed18, error) {
	if a.IsZero() {
		return ZeroFixed18, nil
	}
	if b.IsZero() {
		return ZeroFixed18, ErrDivByZero
	}
	raw, err := u256.MulDivUp(a.raw, fixedOne, b.raw)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}

// Complement returns ONE - x when x < ONE, else 0. It is its own
// inverse for x <= ONE (Complement(Complement(x)) == x).
func Complement(x Fixed18) Fixed18 {
	if x.raw.Gte(fixedOne) {
		return ZeroFixed18
	}
	raw, _ := fixedOne.Sub(x.raw) // x < fixedOne was just checked: cannot underflow
	return Fixed18{raw: raw}
}
