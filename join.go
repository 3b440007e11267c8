package weightedpoolmath

// BPTOutGivenExactTokensIn prices a multi-token join that deposits a
// fixed amount of every token and returns the minted LP amount.
// Any amountIn whose per-token ratio exceeds the
// weighted-average ratio across all tokens is partly "taxable": the
// excess over proportional deposit is charged swapFee before it
// contributes to the invariant.
func BPTOutGivenExactTokensIn(balances, weights, amountsIn []Fixed18, supply, swapFee Fixed18) (Fixed18, error) {
	if err := ValidateWeights(weights); err != nil {
		return ZeroFixed18, err
	}
	if err := ValidateBalances(balances, weights); err != nil {
		return ZeroFixed18, err
	}
	if len(amountsIn) != len(balances) {
		return ZeroFixed18, ErrMismatchedLength
	}

	ratios := make([]Fixed18, len(balances))
	weightedRatioSum := ZeroFixed18
	for i := range balances {
		sum, err := Add(balances[i], amountsIn[i])
		if err != nil {
			return ZeroFixed18, err
		}
		ratio, err := DivDown(sum, balances[i])
		if err != nil {
			return ZeroFixed18, err
		}
		ratios[i] = ratio

		weighted, err := MulDown(weights[i], ratio)
		if err != nil {
			return ZeroFixed18, err
		}
		weightedRatioSum, err = Add(weightedRatioSum, weighted)
		if err != nil {
			return ZeroFixed18, err
		}
	}

	invRatio := OneFixed18
	for i := range balances {
		amountIn := amountsIn[i]
		if ratios[i].Gt(weightedRatioSum) {
			rMinusOne, err := Sub(weightedRatioSum, OneFixed18)
			if err != nil {
				return ZeroFixed18, err
			}
			nonTaxable, err := MulDown(balances[i], rMinusOne)
			if err != nil {
				return ZeroFixed18, err
			}
			taxable, err := Sub(amountIn, nonTaxable)
			if err != nil {
				return ZeroFixed18, err
			}
			fee, err := MulUp(taxable, swapFee)
			if err != nil {
				return ZeroFixed18, err
			}
			afterFee, err := Sub(taxable, fee)
			if err != nil {
				return ZeroFixed18, err
			}
			amountIn, err = Add(nonTaxable, afterFee)
			if err != nil {
				return ZeroFixed18, err
			}
		}

		sum, err := Add(balances[i], amountIn)
		if err != nil {
			return ZeroFixed18, err
		}
		ratio, err := DivDown(sum, balances[i])
		if err != nil {
			return ZeroFixed18, err
		}
		power, err := PowDown(ratio, weights[i])
		if err != nil {
			return ZeroFixed18, err
		}
		invRatio, err = MulDown(invRatio, power)
		if err != nil {
			return ZeroFixed18, err
		}
	}

	if !invRatio.Gt(OneFixed18) {
		return ZeroFixed18, nil
	}
	diff, err := Sub(invRatio, OneFixed18)
	if err != nil {
		return ZeroFixed18, err
	}
	return MulDown(supply, diff)
}

// TokenInGivenExactBPTOut prices a single-token join that mints a
// fixed amount of LP shares, returning the required deposit of one
// token. Fails ErrMaxInvariantRatio if minting bptOut
// would push the invariant ratio above 3.0.
func TokenInGivenExactBPTOut(balance, weight, bptOut, supply, swapFee Fixed18) (Fixed18, error) {
	if weight.Lt(minWeight) {
		return ZeroFixed18, ErrWeightOutOfRange
	}

	sum, err := Add(supply, bptOut)
	if err != nil {
		return ZeroFixed18, err
	}
	invRatio, err := DivUp(sum, supply)
	if err != nil {
		return ZeroFixed18, err
	}
	if invRatio.Gt(maxInvariantRatio) {
		return ZeroFixed18, ErrMaxInvariantRatio
	}

	exponent, err := DivDown(OneFixed18, weight)
	if err != nil {
		return ZeroFixed18, err
	}
	balanceRatio, err := PowUp(invRatio, exponent)
	if err != nil {
		return ZeroFixed18, err
	}
	diff, err := Sub(balanceRatio, OneFixed18)
	if err != nil {
		return ZeroFixed18, err
	}
	amountWithoutFee, err := MulUp(balance, diff)
	if err != nil {
		return ZeroFixed18, err
	}

	taxablePercentage := Complement(weight)
	taxable, err := MulUp(amountWithoutFee, taxablePercentage)
	if err != nil {
		return ZeroFixed18, err
	}
	nonTaxable, err := Sub(amountWithoutFee, taxable)
	if err != nil {
		return ZeroFixed18, err
	}
	taxableWithFees, err := DivUp(taxable, Complement(swapFee))
	if err != nil {
		return ZeroFixed18, err
	}
	return Add(nonTaxable, taxableWithFees)
}

// AllTokensInGivenExactBPTOut prices a proportional join that mints a
// fixed amount of LP shares by depositing every token in proportion to
// its current balance.
func AllTokensInGivenExactBPTOut(balances []Fixed18, bptOut, supply Fixed18) ([]Fixed18, error) {
	bptRatio, err := DivUp(bptOut, supply)
	if err != nil {
		return nil, err
	}
	amounts := make([]Fixed18, len(balances))
	for i, b := range balances {
		amounts[i], err = MulUp(b, bptRatio)
		if err != nil {
			return nil, err
		}
	}
	return amounts, nil
}
