package weightedpoolmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateWeightsAcceptsExactSum(t *testing.T) {
	weights := []Fixed18{f18(t, "0.3"), f18(t, "0.3"), f18(t, "0.4")}
	assert.NoError(t, ValidateWeights(weights))
}

func TestValidateWeightsRejectsNonUnitSum(t *testing.T) {
	weights := []Fixed18{f18(t, "0.3"), f18(t, "0.3")}
	assert.ErrorIs(t, ValidateWeights(weights), ErrWeightOutOfRange)
}

func TestValidateWeightsRejectsBelowMinWeight(t *testing.T) {
	weights := []Fixed18{f18(t, "0.999"), f18(t, "0.001")}
	assert.ErrorIs(t, ValidateWeights(weights), ErrWeightOutOfRange)
}

func TestValidateWeightsRejectsEmpty(t *testing.T) {
	assert.ErrorIs(t, ValidateWeights(nil), ErrTooManyTokens)
}

func TestValidateBalancesRejectsMismatchedLength(t *testing.T) {
	balances := []Fixed18{f18(t, "100")}
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	assert.ErrorIs(t, ValidateBalances(balances, weights), ErrMismatchedLength)
}

func TestValidateBalancesRejectsZeroBalance(t *testing.T) {
	balances := []Fixed18{f18(t, "100"), ZeroFixed18}
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	assert.ErrorIs(t, ValidateBalances(balances, weights), ErrZeroInvariant)
}

func TestValidateBalancesAcceptsValidInput(t *testing.T) {
	balances := []Fixed18{f18(t, "100"), f18(t, "200")}
	weights := []Fixed18{f18(t, "0.5"), f18(t, "0.5")}
	assert.NoError(t, ValidateBalances(balances, weights))
}
