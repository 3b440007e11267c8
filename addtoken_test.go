package weightedpoolmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBPTOutAddTokenHalfWeightDoublesSupply(t *testing.T) {
	// A new token entering at weight 0.5 halves the existing tokens'
	// combined weight from 1 to 0.5, so supply must double to leave
	// existing holders' share unchanged: 100 supply -> 100 newly minted.
	supply := f18(t, "100")
	newWeight := f18(t, "0.5")

	got, err := BPTOutAddToken(supply, newWeight)
	assert.NoError(t, err)
	assert.True(t, got.Eq(f18(t, "100")))
}

func TestBPTOutAddTokenSmallWeight(t *testing.T) {
	supply := f18(t, "1000")
	newWeight := f18(t, "0.1") // remaining weight 0.9, ratio 1/0.9 - 1 ≈ 0.1111

	got, err := BPTOutAddToken(supply, newWeight)
	assert.NoError(t, err)

	lowerBound := f18(t, "110")
	upperBound := f18(t, "112")
	assert.True(t, got.Gt(lowerBound))
	assert.True(t, got.Lt(upperBound))
}

func TestBPTOutAddTokenRejectsWeightAtOrAboveOne(t *testing.T) {
	_, err := BPTOutAddToken(f18(t, "100"), OneFixed18)
	assert.ErrorIs(t, err, ErrOverflow)

	_, err = BPTOutAddToken(f18(t, "100"), f18(t, "1.5"))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestBPTOutAddTokenZeroWeightMintsNothing(t *testing.T) {
	got, err := BPTOutAddToken(f18(t, "100"), ZeroFixed18)
	assert.NoError(t, err)
	assert.True(t, got.IsZero())
}
