package weightedpoolmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariantEqualWeightsEqualBalances(t *testing.T) {
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	balances := []Fixed18{f18(t, "100"), f18(t, "100")}

	got, err := Invariant(weights, balances)
	assert.NoError(t, err)
	assert.True(t, got.Eq(f18(t, "100")))
}

func TestInvariantRejectsMismatchedLength(t *testing.T) {
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	balances := []Fixed18{f18(t, "100")}

	_, err := Invariant(weights, balances)
	assert.ErrorIs(t, err, ErrMismatchedLength)
}

func TestInvariantRejectsZeroBalance(t *testing.T) {
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	balances := []Fixed18{f18(t, "100"), ZeroFixed18}

	_, err := Invariant(weights, balances)
	assert.ErrorIs(t, err, ErrZeroInvariant)
}

func TestInvariantRejectsBadWeights(t *testing.T) {
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.6")}
	balances := []Fixed18{f18(t, "100"), f18(t, "100")}

	_, err := Invariant(weights, balances)
	assert.ErrorIs(t, err, ErrWeightOutOfRange)
}

func TestInvariantMonotonicInBalance(t *testing.T) {
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	before, err := Invariant(weights, []Fixed18{f18(t, "100"), f18(t, "100")})
	assert.NoError(t, err)
	after, err := Invariant(weights, []Fixed18{f18(t, "110"), f18(t, "100")})
	assert.NoError(t, err)
	assert.True(t, after.Gt(before))
}
