package u256

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddOverflow(t *testing.T) {
	max, err := FromBig(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(1)))
	assert.NoError(t, err)

	_, err = max.Add(One)
	assert.ErrorIs(t, err, ErrOverflow)

	sum, err := FromUint64(2).Add(FromUint64(3))
	assert.NoError(t, err)
	assert.Equal(t, "5", sum.String())
}

func TestSubUnderflow(t *testing.T) {
	_, err := Zero.Sub(One)
	assert.ErrorIs(t, err, ErrUnderflow)

	diff, err := FromUint64(5).Sub(FromUint64(2))
	assert.NoError(t, err)
	assert.Equal(t, "3", diff.String())
}

func TestMulOverflow(t *testing.T) {
	big2to255 := new(big.Int).Lsh(big.NewInt(1), 255)
	a, err := FromBig(big2to255)
	assert.NoError(t, err)

	_, err = a.Mul(FromUint64(4))
	assert.ErrorIs(t, err, ErrOverflow)
}

func TestDivByZero(t *testing.T) {
	_, err := FromUint64(1).Div(Zero)
	assert.ErrorIs(t, err, ErrDivByZero)
}

func TestMulDivNoIntermediateOverflow(t *testing.T) {
	maxU128 := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	a, _ := FromBig(maxU128)
	b, _ := FromBig(maxU128)

	got, err := MulDiv(a, b, One)
	assert.NoError(t, err)

	want := new(big.Int).Mul(maxU128, maxU128)
	assert.Equal(t, want.String(), got.String())
}

func TestMulDivUpRoundsAwayFromZero(t *testing.T) {
	got, err := MulDivUp(FromUint64(7), FromUint64(1), FromUint64(2))
	assert.NoError(t, err)
	assert.Equal(t, "4", got.String())

	got, err = MulDiv(FromUint64(7), FromUint64(1), FromUint64(2))
	assert.NoError(t, err)
	assert.Equal(t, "3", got.String())
}

func TestMulDivUpZeroNumerator(t *testing.T) {
	got, err := MulDivUp(Zero, FromUint64(9), FromUint64(2))
	assert.NoError(t, err)
	assert.True(t, got.IsZero())
}
