package weightedpoolmath

import (
	"github.com/CoinSummer/weighted-poolmath/internal/i256"
	"github.com/CoinSummer/weighted-poolmath/internal/u256"
)

// Fixed-point scale constants, named exactly as the reference algorithm
// names them so the decomposition tables below read the same way the
// source does.
var (
	one18  = i256.MustFromDecimalString("1000000000000000000")                    // 10^18
	one20  = i256.MustFromDecimalString("100000000000000000000")                  // 10^20
	one36  = i256.MustFromDecimalString("1000000000000000000000000000000000000") // 10^36
	hundred = one20
	wumbo   = one36
)

// MaxExp / MinExp bound the domain of exp: values outside this range
// cannot be represented in the 18-decimal fixed point result.
var (
	maxExp = i256.MustFromDecimalString("130000000000000000000") // 130e18
	minExp = i256.MustFromDecimalString("-41000000000000000000") // -41e18
)

// lnLower / lnUpper bound the "close to one" window in which ln routes
// through the 36-decimal ln36 kernel instead of the 18-decimal series.
// The window is a symmetric ±10% band around ONE (0.9e18, 1.1e18); see
// DESIGN.md for why an asymmetric reading of this bound was rejected.
var (
	lnLower = i256.MustFromDecimalString("900000000000000000")  // 0.9e18
	lnUpper = i256.MustFromDecimalString("1100000000000000000") // 1.1e18
)

// mildExponentBound caps the exponent pow() will accept before the
// ln(base)*exponent product itself could overflow I256.
var mildExponentBound = func() i256.Int {
	// 2^254 / HUNDRED
	twoTo254 := i256.MustFromDecimalString("28948022309329048855892746252171976963317496166410141009864396001978282409984")
	q, err := twoTo254.Div(hundred)
	if err != nil {
		panic(err)
	}
	return q
}()

// decompositionTerm is one row of the precomputed (x_n, a_n) table used
// by both ln and exp to peel off the integer part of the logarithm /
// exponent via repeated comparison-and-subtract.
type decompositionTerm struct {
	x i256.Int // exponent contribution, 18-decimal
	a i256.Int // e^x, at the decimal scale the table comment documents
}

// lnTable holds (x_n, a_n) for n = 0..11. x_0, x_1 are given at
// 18-decimal scale (they are compared and divided out of the input
// before it is rescaled to 20 decimals); x_2..x_11 are given at
// 20-decimal scale to match the rescaled input they are compared and
// divided against. Each a_n is the
// correctly-rounded (truncated) value of e^(x_n) at the scale its
// comment documents.
var lnTable = [12]decompositionTerm{
	{x: i256.MustFromDecimalString("128000000000000000000"), a: i256.MustFromDecimalString("38877084059945950922226736883574780727281750630829988857")},
	{x: i256.MustFromDecimalString("64000000000000000000"), a: i256.MustFromDecimalString("6235149080811616882909238708")},
	{x: i256.MustFromDecimalString("3200000000000000000000"), a: i256.MustFromDecimalString("7896296018268069516097802263510822")},
	{x: i256.MustFromDecimalString("1600000000000000000000"), a: i256.MustFromDecimalString("888611052050787263676302374")},
	{x: i256.MustFromDecimalString("800000000000000000000"), a: i256.MustFromDecimalString("298095798704172827474359")},
	{x: i256.MustFromDecimalString("400000000000000000000"), a: i256.MustFromDecimalString("5459815003314423907811")},
	{x: i256.MustFromDecimalString("200000000000000000000"), a: i256.MustFromDecimalString("738905609893065022723")},
	{x: i256.MustFromDecimalString("100000000000000000000"), a: i256.MustFromDecimalString("271828182845904523536")},
	{x: i256.MustFromDecimalString("50000000000000000000"), a: i256.MustFromDecimalString("164872127070012814684")},
	{x: i256.MustFromDecimalString("25000000000000000000"), a: i256.MustFromDecimalString("128402541668774148407")},
	{x: i256.MustFromDecimalString("12500000000000000000"), a: i256.MustFromDecimalString("113314845306682631682")},
	{x: i256.MustFromDecimalString("6250000000000000000"), a: i256.MustFromDecimalString("106449445891785942956")},
}

// expTable holds the same (x_n, a_n) pairs used by exp's greedy
// decomposition, indexed the same way as lnTable (n = 0..9 are used;
// n = 10, 11 are unused by exp, only by ln's finer-grained remainder).
var expTable = lnTable

// Pool limits, expressed as unsigned Fixed18 values since weights,
// balances and ratios are never negative.
var (
	minWeight         = Fixed18{raw: u256.FromUint64(10_000_000_000_000_000)} // 1%
	maxTokens         = 100
	maxInRatio        = Fixed18{raw: u256.FromUint64(300_000_000_000_000_000)} // 0.3e18
	maxOutRatio       = maxInRatio
	maxInvariantRatio = Fixed18{raw: u256.MustFromDecimalString("3000000000000000000")} // 3.0e18
	minInvariantRatio = Fixed18{raw: u256.FromUint64(700_000_000_000_000_000)}          // 0.7e18
)
