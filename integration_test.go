package weightedpoolmath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	weightedpoolmath "github.com/CoinSummer/weighted-poolmath"
	"github.com/CoinSummer/weighted-poolmath/testutil"
)

func TestWeightedPoolEndToEndSwapAndJoin(t *testing.T) {
	weights := testutil.F18Slice("0.5", "0.5")
	balances := testutil.F18Slice("100", "100")
	swapFee := testutil.F18("0.003")
	supply := testutil.F18("100")

	pool, err := weightedpoolmath.NewWeightedPool(balances, weights, swapFee, supply)
	assert.NoError(t, err)

	invariant, err := pool.Invariant()
	assert.NoError(t, err)
	assert.True(t, invariant.Eq(testutil.F18("100")))

	amountOut, err := pool.OutGivenIn(0, 1, testutil.F18("10"))
	assert.NoError(t, err)
	assert.True(t, amountOut.Gt(testutil.F18("9")))
	assert.True(t, amountOut.Lt(testutil.F18("10")))

	bptOut, err := pool.BPTOutGivenExactTokensIn(testutil.F18Slice("1", "1"))
	assert.NoError(t, err)
	assert.True(t, bptOut.Gt(weightedpoolmath.ZeroFixed18))
}

func TestWeightedPoolEndToEndExit(t *testing.T) {
	weights := testutil.F18Slice("0.3", "0.7")
	balances := testutil.F18Slice("1000", "2000")
	swapFee := testutil.F18("0.003")
	supply := testutil.F18("1500")

	pool, err := weightedpoolmath.NewWeightedPool(balances, weights, swapFee, supply)
	assert.NoError(t, err)

	amounts, err := pool.TokensOutGivenExactBPTIn(testutil.F18("150")) // 10% of supply
	assert.NoError(t, err)
	assert.Len(t, amounts, 2)
	assert.True(t, amounts[0].Eq(testutil.F18("100")))
	assert.True(t, amounts[1].Eq(testutil.F18("200")))
}

func TestLnExpRoundTripViaPublicAPI(t *testing.T) {
	x := testutil.SF18("1.5")

	expX, err := weightedpoolmath.Exp(x)
	assert.NoError(t, err)

	back, err := weightedpoolmath.Ln(expX)
	assert.NoError(t, err)

	asFixed, err := back.Fixed18()
	assert.NoError(t, err)
	assert.True(t, asFixed.Gt(testutil.F18("1.49")))
	assert.True(t, asFixed.Lt(testutil.F18("1.51")))
}
