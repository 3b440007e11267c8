package weightedpoolmath

// Invariant computes I = Π(balances[i]^weights[i]), the weighted
// geometric mean a weighted pool preserves under fee-less swaps.
// weights and balances must have the same length and weights must
// pass ValidateWeights.
func Invariant(weights, balances []Fixed18) (Fixed18, error) {
	if err := ValidateWeights(weights); err != nil {
		return ZeroFixed18, err
	}
	if err := ValidateBalances(balances, weights); err != nil {
		return ZeroFixed18, err
	}

	invariant := OneFixed18
	for i := range balances {
		term, err := PowDown(balances[i], weights[i])
		if err != nil {
			return ZeroFixed18, err
		}
		invariant, err = MulDown(invariant, term)
		if err != nil {
			return ZeroFixed18, err
		}
	}
	if invariant.IsZero() {
		return ZeroFixed18, ErrZeroInvariant
	}
	return invariant, nil
}
