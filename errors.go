package weightedpoolmath

import "errors"

// Error taxonomy for the weighted-pool math core. Every fallible
// operation reports one of these sentinels rather than panicking or
// returning a zero value silently.
var (
	// ErrOverflow is any unsigned mul/add exceeding 2^256, or a signed
	// value leaving the I256 range.
	ErrOverflow = errors.New("weightedpoolmath: overflow")

	// ErrUnderflow is an unsigned subtraction with a < b, or an exp
	// argument below MIN_EXP.
	ErrUnderflow = errors.New("weightedpoolmath: underflow")

	// ErrDivByZero is a zero divisor in div_* or mul_div.
	ErrDivByZero = errors.New("weightedpoolmath: division by zero")

	// ErrDomain is ln(a) with a <= 0, or pow producing an intermediate
	// outside [MIN_EXP, MAX_EXP].
	ErrDomain = errors.New("weightedpoolmath: domain error")

	// ErrZeroInvariant is returned when the invariant evaluates to 0.
	ErrZeroInvariant = errors.New("weightedpoolmath: zero invariant")

	// ErrMaxInRatio is returned when a swap's input exceeds MAX_IN_RATIO
	// of the input token's balance.
	ErrMaxInRatio = errors.New("weightedpoolmath: amount in exceeds max in ratio")

	// ErrMaxOutRatio is returned when a swap's output exceeds
	// MAX_OUT_RATIO of the output token's balance.
	ErrMaxOutRatio = errors.New("weightedpoolmath: amount out exceeds max out ratio")

	// ErrMaxInvariantRatio is returned when a join would push the
	// invariant ratio above MAX_INVARIANT_RATIO.
	ErrMaxInvariantRatio = errors.New("weightedpoolmath: invariant ratio exceeds maximum")

	// ErrMinInvariantRatio is returned when an exit would push the
	// invariant ratio below MIN_INVARIANT_RATIO.
	ErrMinInvariantRatio = errors.New("weightedpoolmath: invariant ratio below minimum")

	// ErrWeightOutOfRange is returned when a weight is below MIN_WEIGHT
	// or a pool's weights do not sum to ONE.
	ErrWeightOutOfRange = errors.New("weightedpoolmath: weight out of range")

	// ErrTooManyTokens is returned when a multi-token operation receives
	// no weights at all or more than MAX_TOKENS of them.
	ErrTooManyTokens = errors.New("weightedpoolmath: too many tokens")

	// ErrMismatchedLength is returned when parallel balance/weight/amount
	// slices passed to a multi-token operation have different lengths.
	ErrMismatchedLength = errors.New("weightedpoolmath: mismatched slice lengths")
)
