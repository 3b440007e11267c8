package weightedpoolmath

import (
	"github.com/CoinSummer/weighted-poolmath/internal/i256"
	"github.com/CoinSummer/weighted-poolmath/internal/u256"
)

// powErrorFraction is the 10^-4 relative error margin PowDown/PowUp
// widen their result by: raw value 10^14, i.e. 0.0001 in Fixed18.
var powErrorFraction = Fixed18{raw: u256.FromUint64(100_000_000_000_000)}

// powOptions configures Pow's domain enforcement.
type powOptions struct {
	domainCheck bool
}

// PowOption configures Pow, PowDown and PowUp.
type PowOption func(*powOptions)

// WithDomainCheck toggles the MIN_EXP <= ln(base)*exponent <= MAX_EXP
// range check pow applies to its intermediate logarithm before
// exponentiating. It defaults to enabled, since an out-of-range
// intermediate means the result cannot
// round-trip through exp without itself hitting ErrOverflow/ErrUnderflow,
// so surfacing ErrDomain at the source is more useful to a caller than
// relying on exp to reject it.
func WithDomainCheck(enabled bool) PowOption {
	return func(o *powOptions) {
		o.domainCheck = enabled
	}
}

func resolvePowOptions(opts []PowOption) powOptions {
	o := powOptions{domainCheck: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Pow returns base^exponent, computed as exp(ln(base) * exponent).
// base and exponent are both unsigned Fixed18 values (pool weights and
// balances are never negative). Fast paths for exponent in {1, 2, 4}
// bypass the transcendental kernel entirely, using the mul_down chain
// of powFastPathDown.
func Pow(base, exponent Fixed18, opts ...PowOption) (Fixed18, error) {
	if exponent.IsZero() {
		return OneFixed18, nil
	}
	if base.IsZero() {
		return ZeroFixed18, nil
	}
	if fast, ok, err := powFastPathDown(base, exponent); ok {
		return fast, err
	}

	baseRaw, err := i256.FromBig(base.Raw().ToBig())
	if err != nil {
		return ZeroFixed18, ErrDomain
	}
	expRaw, err := i256.FromBig(exponent.Raw().ToBig())
	if err != nil {
		return ZeroFixed18, ErrDomain
	}
	if expRaw.Cmp(mildExponentBound) >= 0 {
		return ZeroFixed18, ErrDomain
	}

	var logBase i256.Int
	if baseRaw.Gt(lnLower) && baseRaw.Lt(lnUpper) {
		ln36Raw, err := ln36(baseRaw)
		if err != nil {
			return ZeroFixed18, err
		}
		hi, err := ln36Raw.Div(one18)
		if err != nil {
			return ZeroFixed18, err
		}
		lo, err := ln36Raw.Mod(one18)
		if err != nil {
			return ZeroFixed18, err
		}
		hiTerm, err := hi.Mul(expRaw)
		if err != nil {
			return ZeroFixed18, err
		}
		loTerm, err := lo.Mul(expRaw)
		if err != nil {
			return ZeroFixed18, err
		}
		loTerm, err = loTerm.Div(one18)
		if err != nil {
			return ZeroFixed18, err
		}
		logBase, err = hiTerm.Add(loTerm)
		if err != nil {
			return ZeroFixed18, err
		}
	} else {
		lnRaw, err := lnPriv(baseRaw)
		if err != nil {
			return ZeroFixed18, err
		}
		logBase, err = lnRaw.Mul(expRaw)
		if err != nil {
			return ZeroFixed18, err
		}
	}
	logBase, err = logBase.Div(one18)
	if err != nil {
		return ZeroFixed18, err
	}

	o := resolvePowOptions(opts)
	if o.domainCheck && (logBase.Lt(minExp) || logBase.Gt(maxExp)) {
		return ZeroFixed18, ErrDomain
	}

	expResultRaw, err := expPriv(logBase)
	if err != nil {
		return ZeroFixed18, err
	}
	raw, err := u256.FromBig(expResultRaw.ToBig())
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return NewFixed18FromRaw(raw), nil
}

// powFastPathDown and powFastPathUp short-circuit pow_down/pow_up (and
// Pow itself, which uses the down variant) for
// the three exponents weighted-pool math actually uses outside
// join/exit weight ratios: 1, 2 and 4, via plain mul_down/mul_up
// chains instead of the transcendental kernel. These fast paths must
// be exact, with no error margin added. ok is false
// when exponent does not match one of these.
func powFastPathDown(base, exponent Fixed18) (Fixed18, bool, error) {
	switch exponent.raw.String() {
	case "1000000000000000000": // 1.0
		return base, true, nil
	case "2000000000000000000": // 2.0
		r, err := MulDown(base, base)
		return r, true, err
	case "4000000000000000000": // 4.0
		sq, err := MulDown(base, base)
		if err != nil {
			return ZeroFixed18, true, err
		}
		r, err := MulDown(sq, sq)
		return r, true, err
	default:
		return ZeroFixed18, false, nil
	}
}

func powFastPathUp(base, exponent Fixed18) (Fixed18, bool, error) {
	switch exponent.raw.String() {
	case "1000000000000000000": // 1.0
		return base, true, nil
	case "2000000000000000000": // 2.0
		r, err := MulUp(base, base)
		return r, true, err
	case "4000000000000000000": // 4.0
		sq, err := MulUp(base, base)
		if err != nil {
			return ZeroFixed18, true, err
		}
		r, err := MulUp(sq, sq)
		return r, true, err
	default:
		return ZeroFixed18, false, nil
	}
}

// PowDown returns a lower-bound-safe base^exponent: Pow's result minus
// a 10^-4 relative error margin, clamped to 0 rather than underflowing
// when the margin exceeds the raw result. Clamping to 0 is correct
// here since PowDown is always used as a conservative (round-toward-pool) bound
// and a negative result has no meaning in unsigned Fixed18.
func PowDown(base, exponent Fixed18, opts ...PowOption) (Fixed18, error) {
	if fast, ok, err := powFastPathDown(base, exponent); ok {
		return fast, err
	}
	raw, err := Pow(base, exponent, opts...)
	if err != nil {
		return ZeroFixed18, err
	}
	margin, err := powErrorMargin(raw)
	if err != nil {
		return ZeroFixed18, err
	}
	if margin.Gt(raw) {
		return ZeroFixed18, nil
	}
	return Sub(raw, margin)
}

// PowUp returns an upper-bound-safe base^exponent: Pow's result plus a
// 10^-4 relative error margin.
func PowUp(base, exponent Fixed18, opts ...PowOption) (Fixed18, error) {
	if fast, ok, err := powFastPathUp(base, exponent); ok {
		return fast, err
	}
	raw, err := Pow(base, exponent, opts...)
	if err != nil {
		return ZeroFixed18, err
	}
	margin, err := powErrorMargin(raw)
	if err != nil {
		return ZeroFixed18, err
	}
	return Add(raw, margin)
}

// powErrorMargin computes mul_up(raw, 10^-4) + 1, the error envelope
// applied around Pow's raw result.
func powErrorMargin(raw Fixed18) (Fixed18, error) {
	margin, err := MulUp(raw, powErrorFraction)
	if err != nil {
		return ZeroFixed18, err
	}
	return Add(margin, Fixed18{raw: u256.One})
}
