package weightedpoolmath

// BPTInGivenExactTokensOut prices a multi-token exit that withdraws a
// fixed amount of every token and returns the LP amount that must be
// burned, the exit-side mirror of BPTOutGivenExactTokensIn. A token
// withdrawn in a larger proportion
// than the weighted average is partly "taxable": the excess over
// proportional withdrawal is charged swapFee.
func BPTInGivenExactTokensOut(balances, weights, amountsOut []Fixed18, supply, swapFee Fixed18) (Fixed18, error) {
	if err := ValidateWeights(weights); err != nil {
		return ZeroFixed18, err
	}
	if err := ValidateBalances(balances, weights); err != nil {
		return ZeroFixed18, err
	}
	if len(amountsOut) != len(balances) {
		return ZeroFixed18, ErrMismatchedLength
	}

	ratios := make([]Fixed18, len(balances))
	weightedRatioSum := ZeroFixed18
	for i := range balances {
		diff, err := Sub(balances[i], amountsOut[i])
		if err != nil {
			return ZeroFixed18, err
		}
		ratio, err := DivUp(diff, balances[i])
		if err != nil {
			return ZeroFixed18, err
		}
		ratios[i] = ratio

		weighted, err := MulUp(ratio, weights[i])
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
		amountOut := amountsOut[i]
		amountOutWithFee := amountOut
		if ratios[i].Lt(weightedRatioSum) {
			nonTaxable, err := MulDown(balances[i], Complement(weightedRatioSum))
			if err != nil {
				return ZeroFixed18, err
			}
			taxable, err := Sub(amountOut, nonTaxable)
			if err != nil {
				return ZeroFixed18, err
			}
			taxableWithFee, err := DivUp(taxable, Complement(swapFee))
			if err != nil {
				return ZeroFixed18, err
			}
			amountOutWithFee, err = Add(nonTaxable, taxableWithFee)
			if err != nil {
				return ZeroFixed18, err
			}
		}

		newBalance, err := Sub(balances[i], amountOutWithFee)
		if err != nil {
			return ZeroFixed18, err
		}
		balanceRatio, err := DivDown(newBalance, balances[i])
		if err != nil {
			return ZeroFixed18, err
		}
		power, err := PowDown(balanceRatio, weights[i])
		if err != nil {
			return ZeroFixed18, err
		}
		invRatio, err = MulDown(invRatio, power)
		if err != nil {
			return ZeroFixed18, err
		}
	}

	if invRatio.Lt(minInvariantRatio) {
		return ZeroFixed18, ErrMinInvariantRatio
	}
	return MulUp(supply, Complement(invRatio))
}

// TokenOutGivenExactBPTIn prices a single-token exit that burns a
// fixed amount of LP shares, returning the withdrawable amount of one
// token. Fails ErrMinInvariantRatio if burning bptIn
// would push the invariant ratio below 0.7.
func TokenOutGivenExactBPTIn(balance, weight, bptIn, supply, swapFee Fixed18) (Fixed18, error) {
	if weight.Lt(minWeight) {
		return ZeroFixed18, ErrWeightOutOfRange
	}
	if bptIn.Gt(supply) {
		return ZeroFixed18, ErrUnderflow
	}

	diff, err := Sub(supply, bptIn)
	if err != nil {
		return ZeroFixed18, err
	}
	invRatio, err := DivUp(diff, supply)
	if err != nil {
		return ZeroFixed18, err
	}
	if invRatio.Lt(minInvariantRatio) {
		return ZeroFixed18, ErrMinInvariantRatio
	}

	exponent, err := DivDown(OneFixed18, weight)
	if err != nil {
		return ZeroFixed18, err
	}
	balanceRatio, err := PowUp(invRatio, exponent)
	if err != nil {
		return ZeroFixed18, err
	}
	amountWithoutFee, err := MulDown(balance, Complement(balanceRatio))
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
	taxableMinusFees, err := MulDown(taxable, Complement(swapFee))
	if err != nil {
		return ZeroFixed18, err
	}
	return Add(nonTaxable, taxableMinusFees)
}

// TokensOutGivenExactBPTIn prices a proportional exit that burns a
// fixed amount of LP shares by withdrawing every token in proportion
// to its current balance.
func TokensOutGivenExactBPTIn(balances []Fixed18, bptIn, supply Fixed18) ([]Fixed18, error) {
	bptRatio, err := DivDown(bptIn, supply)
	if err != nil {
		return nil, err
	}
	amounts := make([]Fixed18, len(balances))
	for i, b := range balances {
		amounts[i], err = MulDown(b, bptRatio)
		if err != nil {
			return nil, err
		}
	}
	return amounts, nil
}
