package weightedpoolmath

import "github.com/CoinSummer/weighted-poolmath/internal/i256"

// hundredInt and the small odd-integer divisors below are the plain
// (non-fixed-point) integers the Taylor series and decomposition steps
// divide by, as distinct from the scale constants in constants.go.
var hundredInt = i256.FromInt64(100)

var oddSeriesDivisors18 = []i256.Int{
	i256.FromInt64(3), i256.FromInt64(5), i256.FromInt64(7),
	i256.FromInt64(9), i256.FromInt64(11),
}

var oddSeriesDivisors36 = []i256.Int{
	i256.FromInt64(3), i256.FromInt64(5), i256.FromInt64(7),
	i256.FromInt64(9), i256.FromInt64(11), i256.FromInt64(13), i256.FromInt64(15),
}

// Ln computes the natural logarithm of a, a signed 18-decimal
// fixed-point value. a must be strictly positive.
//
// Arguments close to 1 are routed through ln36 for extra precision;
// otherwise the argument is decomposed against the precomputed
// (x_n, a_n) table and finished with an odd-power Taylor series on
// the remainder.
func Ln(a SFixed18) (SFixed18, error) {
	araw := a.raw
	if !araw.Gt(i256.Zero) {
		return ZeroSFixed18, ErrDomain
	}
	if araw.Gt(lnLower) && araw.Lt(lnUpper) {
		ln36Raw, err := ln36(araw)
		if err != nil {
			return ZeroSFixed18, err
		}
		q, err := ln36Raw.Div(one18)
		if err != nil {
			return ZeroSFixed18, err
		}
		return SFixed18{raw: q}, nil
	}
	raw, err := lnPriv(araw)
	if err != nil {
		return ZeroSFixed18, err
	}
	return SFixed18{raw: raw}, nil
}

// lnPriv implements the table-decomposition branch of ln, operating on
// the raw 18-decimal integer directly. a must already be known strictly
// positive by the caller.
func lnPriv(a i256.Int) (i256.Int, error) {
	if a.Lt(one18) {
		// ln(a) = -ln(ONE_36/a) for a < 1: recurses exactly once, since
		// ONE_36/a is always >= ONE_18 when 0 < a < ONE_18.
		inner, err := one36.Div(a)
		if err != nil {
			return i256.Zero, err
		}
		lnInner, err := lnPriv(inner)
		if err != nil {
			return i256.Zero, err
		}
		return lnInner.Neg()
	}

	sum := i256.Zero
	aLocal := a

	// n = 0, 1: plain integer division against a0, a1.
	for n := 0; n < 2; n++ {
		threshold, err := lnTable[n].a.Mul(one18)
		if err != nil {
			return i256.Zero, err
		}
		if aLocal.Cmp(threshold) >= 0 {
			aLocal, err = aLocal.Div(lnTable[n].a)
			if err != nil {
				return i256.Zero, err
			}
			sum, err = sum.Add(lnTable[n].x)
			if err != nil {
				return i256.Zero, err
			}
		}
	}

	var err error
	sum, err = sum.Mul(hundredInt)
	if err != nil {
		return i256.Zero, err
	}
	aLocal, err = aLocal.Mul(hundredInt)
	if err != nil {
		return i256.Zero, err
	}

	// n = 2..11: 20-decimal fixed-point division against a2..a11.
	for n := 2; n < len(lnTable); n++ {
		if aLocal.Cmp(lnTable[n].a) >= 0 {
			aLocal, err = aLocal.Mul(one20)
			if err != nil {
				return i256.Zero, err
			}
			aLocal, err = aLocal.Div(lnTable[n].a)
			if err != nil {
				return i256.Zero, err
			}
			sum, err = sum.Add(lnTable[n].x)
			if err != nil {
				return i256.Zero, err
			}
		}
	}

	// Remainder a' is in [ONE_20, a_11) in 20-decimal units. Series:
	// ln(a') = 2*(z + z^3/3 + z^5/5 + ... + z^11/11),
	// z = (a' - ONE_20)*ONE_20 / (a' + ONE_20).
	numerator, err := aLocal.Sub(one20)
	if err != nil {
		return i256.Zero, err
	}
	denominator, err := aLocal.Add(one20)
	if err != nil {
		return i256.Zero, err
	}
	numerator, err = numerator.Mul(one20)
	if err != nil {
		return i256.Zero, err
	}
	z, err := numerator.Div(denominator)
	if err != nil {
		return i256.Zero, err
	}
	zSquared, err := z.Mul(z)
	if err != nil {
		return i256.Zero, err
	}
	zSquared, err = zSquared.Div(one20)
	if err != nil {
		return i256.Zero, err
	}

	num := z
	seriesSum := z
	for _, k := range oddSeriesDivisors18 {
		num, err = num.Mul(zSquared)
		if err != nil {
			return i256.Zero, err
		}
		num, err = num.Div(one20)
		if err != nil {
			return i256.Zero, err
		}
		term, err := num.Div(k)
		if err != nil {
			return i256.Zero, err
		}
		seriesSum, err = seriesSum.Add(term)
		if err != nil {
			return i256.Zero, err
		}
	}
	two := i256.FromInt64(2)
	seriesSum, err = seriesSum.Mul(two)
	if err != nil {
		return i256.Zero, err
	}

	total, err := sum.Add(seriesSum)
	if err != nil {
		return i256.Zero, err
	}
	return total.Div(hundredInt)
}

// ln36 computes ln(a) at 36-decimal precision for a in the window
// around 1.0 where lnPriv's table decomposition loses precision. a is
// the caller's ordinary 18-decimal raw value; the result is scaled by
// 10^36.
func ln36(a i256.Int) (i256.Int, error) {
	x, err := a.Mul(one18)
	if err != nil {
		return i256.Zero, err
	}
	numerator, err := x.Sub(one36)
	if err != nil {
		return i256.Zero, err
	}
	denominator, err := x.Add(one36)
	if err != nil {
		return i256.Zero, err
	}
	numerator, err = numerator.Mul(one36)
	if err != nil {
		return i256.Zero, err
	}
	z, err := numerator.Div(denominator)
	if err != nil {
		return i256.Zero, err
	}
	zSquared, err := z.Mul(z)
	if err != nil {
		return i256.Zero, err
	}
	zSquared, err = zSquared.Div(one36)
	if err != nil {
		return i256.Zero, err
	}

	num := z
	seriesSum := z
	for _, k := range oddSeriesDivisors36 {
		num, err = num.Mul(zSquared)
		if err != nil {
			return i256.Zero, err
		}
		num, err = num.Div(one36)
		if err != nil {
			return i256.Zero, err
		}
		term, err := num.Div(k)
		if err != nil {
			return i256.Zero, err
		}
		seriesSum, err = seriesSum.Add(term)
		if err != nil {
			return i256.Zero, err
		}
	}
	two := i256.FromInt64(2)
	return seriesSum.Mul(two)
}

// Exp computes e^x for a signed 18-decimal fixed-point x, bounded to
// [MIN_EXP, MAX_EXP].
//
// Grounded on the same LogExpMath.sol algorithm: negative arguments go
// through the reciprocal identity exp(x) = 1/exp(-x); non-negative
// arguments are decomposed against the same table exp shares with ln,
// then finished with a 12-term Taylor series.
func Exp(x SFixed18) (SFixed18, error) {
	raw, err := expPriv(x.raw)
	if err != nil {
		return ZeroSFixed18, err
	}
	return SFixed18{raw: raw}, nil
}

func expPriv(x i256.Int) (i256.Int, error) {
	if x.Lt(minExp) {
		return i256.Zero, ErrUnderflow
	}
	if x.Gt(maxExp) {
		return i256.Zero, ErrOverflow
	}

	if x.IsNegative() {
		negX, err := x.Neg()
		if err != nil {
			return i256.Zero, err
		}
		innerExp, err := expPriv(negX)
		if err != nil {
			return i256.Zero, err
		}
		numerator, err := one18.Mul(one18)
		if err != nil {
			return i256.Zero, err
		}
		return numerator.Div(innerExp)
	}

	remaining := x
	firstAN := i256.One
	var err error
	switch {
	case remaining.Cmp(expTable[0].x) >= 0:
		remaining, err = remaining.Sub(expTable[0].x)
		if err != nil {
			return i256.Zero, err
		}
		firstAN = expTable[0].a
	case remaining.Cmp(expTable[1].x) >= 0:
		remaining, err = remaining.Sub(expTable[1].x)
		if err != nil {
			return i256.Zero, err
		}
		firstAN = expTable[1].a
	}

	remaining, err = remaining.Mul(hundredInt)
	if err != nil {
		return i256.Zero, err
	}

	product := one20
	for n := 2; n <= 9; n++ {
		if remaining.Cmp(expTable[n].x) >= 0 {
			remaining, err = remaining.Sub(expTable[n].x)
			if err != nil {
				return i256.Zero, err
			}
			product, err = product.Mul(expTable[n].a)
			if err != nil {
				return i256.Zero, err
			}
			product, err = product.Div(one20)
			if err != nil {
				return i256.Zero, err
			}
		}
	}

	seriesSum, err := one20.Add(remaining)
	if err != nil {
		return i256.Zero, err
	}
	term := remaining
	for k := int64(2); k <= 12; k++ {
		term, err = term.Mul(remaining)
		if err != nil {
			return i256.Zero, err
		}
		term, err = term.Div(one20)
		if err != nil {
			return i256.Zero, err
		}
		term, err = term.Div(i256.FromInt64(k))
		if err != nil {
			return i256.Zero, err
		}
		seriesSum, err = seriesSum.Add(term)
		if err != nil {
			return i256.Zero, err
		}
	}

	result, err := product.Mul(seriesSum)
	if err != nil {
		return i256.Zero, err
	}
	result, err = result.Div(one20)
	if err != nil {
		return i256.Zero, err
	}
	result, err = result.Mul(firstAN)
	if err != nil {
		return i256.Zero, err
	}
	return result.Div(hundredInt)
}
