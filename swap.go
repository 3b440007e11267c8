package weightedpoolmath

// OutGivenIn prices a swap that fixes the input amount, returning the
// output amount:
//
//	aO = bO * (1 - (bI / (bI + aI))^(wI/wO))
//
// Fails ErrMaxInRatio when aI exceeds 30% of bI.
func OutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn Fixed18) (Fixed18, error) {
	maxIn, err := MulDown(balanceIn, maxInRatio)
	if err != nil {
		return ZeroFixed18, err
	}
	if amountIn.Gt(maxIn) {
		return ZeroFixed18, ErrMaxInRatio
	}

	denominator, err := Add(balanceIn, amountIn)
	if err != nil {
		return ZeroFixed18, err
	}
	base, err := DivUp(balanceIn, denominator)
	if err != nil {
		return ZeroFixed18, err
	}
	exponent, err := DivDown(weightIn, weightOut)
	if err != nil {
		return ZeroFixed18, err
	}
	power, err := PowUp(base, exponent)
	if err != nil {
		return ZeroFixed18, err
	}
	return MulDown(balanceOut, Complement(power))
}

// InGivenOut prices a swap that fixes the output amount, returning the
// required input amount:
//
//	aI = bI * ((bO / (bO - aO))^(wO/wI) - 1)
//
// Fails ErrMaxOutRatio when aO exceeds 30% of bO, and
// ErrUnderflow when aO >= bO (the pool cannot be drained of a token).
func InGivenOut(balanceIn, weightIn, balanceOut, weightOut, amountOut Fixed18) (Fixed18, error) {
	maxOut, err := MulDown(balanceOut, maxOutRatio)
	if err != nil {
		return ZeroFixed18, err
	}
	if amountOut.Gt(maxOut) {
		return ZeroFixed18, ErrMaxOutRatio
	}
	if amountOut.Gte(balanceOut) {
		return ZeroFixed18, ErrUnderflow
	}

	denominator, err := Sub(balanceOut, amountOut)
	if err != nil {
		return ZeroFixed18, err
	}
	base, err := DivUp(balanceOut, denominator)
	if err != nil {
		return ZeroFixed18, err
	}
	exponent, err := DivUp(weightOut, weightIn)
	if err != nil {
		return ZeroFixed18, err
	}
	power, err := PowUp(base, exponent)
	if err != nil {
		return ZeroFixed18, err
	}
	ratio, err := Sub(power, OneFixed18)
	if err != nil {
		return ZeroFixed18, err
	}
	return MulUp(balanceIn, ratio)
}
