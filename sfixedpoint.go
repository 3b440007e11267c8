package weightedpoolmath

import (
	"github.com/shopspring/decimal"

	"github.com/CoinSummer/weighted-poolmath/internal/i256"
	"github.com/CoinSummer/weighted-poolmath/internal/u256"
)

// sOne is ONE = 10^18 as a signed value, the raw integer representing
// 1.0 in SFixed18.
var sOne = i256.FromInt64(1_000_000_000_000_000_000)

// SFixed18 is an 18-decimal signed fixed-point number: its semantic
// value is raw/10^18. It exists alongside Fixed18 because the log/exp
// kernel the pool math builds on (ln, exp, pow) is defined over signed
// intermediates — ln of a fraction is negative, and exp's reciprocal
// identity needs to negate its argument, so both an unsigned and a
// signed fixed-point type are carried rather than only the unsigned one.
type SFixed18 struct {
	raw i256.Int
}

// ZeroSFixed18 is the additive identity.
var ZeroSFixed18 = SFixed18{}

// OneSFixed18 represents the value 1.0.
var OneSFixed18 = SFixed18{raw: sOne}

// NewSFixed18FromRaw builds an SFixed18 directly from its raw
// 10^18-scaled integer representation.
func NewSFixed18FromRaw(raw i256.Int) SFixed18 {
	return SFixed18{raw: raw}
}

// SFixed18FromFixed18 widens an unsigned Fixed18 into its signed
// counterpart. It fails with ErrOverflow if the unsigned value's raw
// magnitude does not fit in I256: Fixed18's raw value can reach
// 2^256-1 while I256's positive half stops at 2^255-1.
func SFixed18FromFixed18(f Fixed18) (SFixed18, error) {
	raw, err := i256.FromBig(f.Raw().ToBig())
	if err != nil {
		return ZeroSFixed18, ErrOverflow
	}
	return SFixed18{raw: raw}, nil
}

// Fixed18 narrows a signed SFixed18 back into its unsigned counterpart.
// It fails with ErrDomain if f is negative.
func (f SFixed18) Fixed18() (Fixed18, error) {
	if f.raw.IsNegative() {
		return ZeroFixed18, ErrDomain
	}
	raw, err := u256.FromBig(f.raw.ToBig())
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return NewFixed18FromRaw(raw), nil
}

// SFixed18FromDecimal builds an SFixed18 from a shopspring/decimal value.
func SFixed18FromDecimal(d decimal.Decimal) (SFixed18, error) {
	scaled := d.Shift(18).Truncate(0)
	raw, err := i256.FromBig(scaled.BigInt())
	if err != nil {
		return ZeroSFixed18, ErrOverflow
	}
	return SFixed18{raw: raw}, nil
}

// Decimal renders the SFixed18 as a shopspring/decimal value.
func (f SFixed18) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(f.raw.ToBig(), -18)
}

// String renders the raw 10^18-scaled integer.
func (f SFixed18) String() string {
	return f.raw.String()
}

// Raw returns the underlying 10^18-scaled signed integer.
func (f SFixed18) Raw() i256.Int {
	return f.raw
}

// IsZero reports whether f is 0.
func (f SFixed18) IsZero() bool {
	return f.raw.IsZero()
}

// IsNegative reports whether f is strictly negative.
func (f SFixed18) IsNegative() bool {
	return f.raw.IsNegative()
}

// Cmp, Lt, Gt delegate straight to the raw integer.
func (f SFixed18) Cmp(x SFixed18) int { return f.raw.Cmp(x.raw) }
func (f SFixed18) Lt(x SFixed18) bool { return f.raw.Lt(x.raw) }
func (f SFixed18) Gt(x SFixed18) bool { return f.raw.Gt(x.raw) }

// SNeg returns -f, or ErrOverflow if f is I256's minimum value.
func SNeg(f SFixed18) (SFixed18, error) {
	raw, err := f.raw.Neg()
	if err != nil {
		return ZeroSFixed18, ErrOverflow
	}
	return SFixed18{raw: raw}, nil
}

// SAdd returns a + b, checked against the signed range.
func SAdd(a, b SFixed18) (SFixed18, error) {
	raw, err := a.raw.Add(b.raw)
	if err != nil {
		return ZeroSFixed18, ErrOverflow
	}
	return SFixed18{raw: raw}, nil
}

// SSub returns a - b, checked against the signed range.
func SSub(a, b SFixed18) (SFixed18, error) {
	raw, err := a.raw.Sub(b.raw)
	if err != nil {
		return ZeroSFixed18, ErrOverflow
	}
	return SFixed18{raw: raw}, nil
}
