package weightedpoolmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBPTForOwnershipHalfOwnership(t *testing.T) {
	// Owning exactly half of the post-mint supply means minting an
	// amount equal to the existing supply: mul_div(100, 0.5, 0.5) = 100.
	totalSupply := f18(t, "100")
	ownershipPct := f18(t, "0.5")

	got, err := BPTForOwnership(totalSupply, ownershipPct)
	assert.NoError(t, err)
	assert.True(t, got.Eq(f18(t, "100")))
}

func TestBPTForOwnershipSmallPct(t *testing.T) {
	totalSupply := f18(t, "1000")
	ownershipPct := f18(t, "0.1") // mint = 1000 * 0.1/0.9 ≈ 111.11

	got, err := BPTForOwnership(totalSupply, ownershipPct)
	assert.NoError(t, err)

	lowerBound := f18(t, "111")
	upperBound := f18(t, "112")
	assert.True(t, got.Gt(lowerBound))
	assert.True(t, got.Lt(upperBound))
}

func TestBPTForOwnershipRejectsFullOwnership(t *testing.T) {
	_, err := BPTForOwnership(f18(t, "100"), OneFixed18)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestBPTForOwnershipZeroPctMintsNothing(t *testing.T) {
	got, err := BPTForOwnership(f18(t, "100"), ZeroFixed18)
	assert.NoError(t, err)
	assert.True(t, got.IsZero())
}
