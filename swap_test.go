package weightedpoolmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutGivenInEqualWeights(t *testing.T) {
	// Equal-weight pool, balances [100, 100], amountIn 10: the classic
	// constant-product swap, amountOut ≈ 100 - 100*100/110 = 9.0909...
	balanceIn := f18(t, "100")
	weightIn := f18(t, "0.5")
	balanceOut := f18(t, "100")
	weightOut := f18(t, "0.5")
	amountIn := f18(t, "10")

	got, err := OutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn)
	assert.NoError(t, err)

	lowerBound := f18(t, "9.0")
	upperBound := f18(t, "9.2")
	assert.True(t, got.Gt(lowerBound))
	assert.True(t, got.Lt(upperBound))
}

func TestOutGivenInRejectsExcessiveAmountIn(t *testing.T) {
	balanceIn := f18(t, "100")
	weightIn := f18(t, "0.5")
	balanceOut := f18(t, "100")
	weightOut := f18(t, "0.5")
	amountIn := f18(t, "31") // > 30% of balanceIn

	_, err := OutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn)
	assert.ErrorIs(t, err, ErrMaxInRatio)
}

func TestInGivenOutRejectsExcessiveAmountOut(t *testing.T) {
	balanceIn := f18(t, "100")
	weightIn := f18(t, "0.5")
	balanceOut := f18(t, "100")
	weightOut := f18(t, "0.5")
	amountOut := f18(t, "31")

	_, err := InGivenOut(balanceIn, weightIn, balanceOut, weightOut, amountOut)
	assert.ErrorIs(t, err, ErrMaxOutRatio)
}

func TestInGivenOutRejectsDrainingAmount(t *testing.T) {
	balanceIn := f18(t, "100")
	weightIn := f18(t, "0.5")
	balanceOut := f18(t, "100")
	weightOut := f18(t, "0.5")
	amountOut := f18(t, "100") // == balanceOut: would drain the token entirely

	_, err := InGivenOut(balanceIn, weightIn, balanceOut, weightOut, amountOut)
	assert.Error(t, err)
}

func TestSwapRoundTripIsApproximatelyConsistent(t *testing.T) {
	balanceIn := f18(t, "500")
	weightIn := f18(t, "0.3")
	balanceOut := f18(t, "500")
	weightOut := f18(t, "0.7")
	amountIn := f18(t, "5")

	amountOut, err := OutGivenIn(balanceIn, weightIn, balanceOut, weightOut, amountIn)
	assert.NoError(t, err)

	balanceOutAfter, err := Sub(balanceOut, amountOut)
	assert.NoError(t, err)
	impliedAmountIn, err := InGivenOut(balanceIn, weightIn, balanceOutAfter, weightOut, amountOut)
	assert.NoError(t, err)

	// Rounding runs in the pool's favor both ways, so the implied
	// amount in should sit close to, but not below, the original.
	assert.True(t, impliedAmountIn.Gte(amountIn))
	tolerance := f18(t, "0.01")
	diff, err := Sub(impliedAmountIn, amountIn)
	assert.NoError(t, err)
	assert.True(t, diff.Lt(tolerance))
}
