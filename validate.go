package weightedpoolmath

// ValidateWeights checks that every weight is at least MIN_WEIGHT and
// that the weights sum to exactly ONE, rejecting a malformed pool
// eagerly rather than letting it silently produce wrong math
// downstream.
func ValidateWeights(weights []Fixed18) error {
	if len(weights) == 0 || len(weights) > maxTokens {
		return ErrTooManyTokens
	}
	sum := ZeroFixed18
	for _, w := range weights {
		if w.Lt(minWeight) {
			return ErrWeightOutOfRange
		}
		var err error
		sum, err = Add(sum, w)
		if err != nil {
			return err
		}
	}
	if !sum.Eq(OneFixed18) {
		return ErrWeightOutOfRange
	}
	return nil
}

// ValidateBalances checks that balances and weights have matching
// lengths and that every balance is strictly positive — a zero balance
// would make the invariant zero and every swap formula ill-defined.
func ValidateBalances(balances, weights []Fixed18) error {
	if len(balances) != len(weights) {
		return ErrMismatchedLength
	}
	for _, b := range balances {
		if b.IsZero() {
			return ErrZeroInvariant
		}
	}
	return nil
}
