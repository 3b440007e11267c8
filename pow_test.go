package weightedpoolmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPowExponentZeroIsOne(t *testing.T) {
	got, err := Pow(f18(t, "5"), ZeroFixed18)
	assert.NoError(t, err)
	assert.True(t, got.Eq(OneFixed18))
}

func TestPowBaseZeroIsZero(t *testing.T) {
	got, err := Pow(ZeroFixed18, f18(t, "3"))
	assert.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestPowExponentOneIsBase(t *testing.T) {
	base := f18(t, "2")
	got, err := Pow(base, OneFixed18)
	assert.NoError(t, err)
	assert.True(t, got.Eq(base))
}

func TestPowUpExponentFourExact(t *testing.T) {
	// 2^4 = 16 exactly, via the fast path for exponent == 4.
	got, err := PowUp(f18(t, "2"), f18(t, "4"))
	assert.NoError(t, err)
	assert.True(t, got.Eq(f18(t, "16")))

	gotDown, err := PowDown(f18(t, "2"), f18(t, "4"))
	assert.NoError(t, err)
	assert.True(t, gotDown.Eq(got))
}

func TestPowFastPathMatchesMulChain(t *testing.T) {
	base := f18(t, "1.5")
	sq, err := MulDown(base, base)
	assert.NoError(t, err)
	want, err := MulDown(sq, sq)
	assert.NoError(t, err)

	got, err := PowDown(base, f18(t, "4"))
	assert.NoError(t, err)
	assert.True(t, got.Eq(want))
}

func TestPowDownLteUp(t *testing.T) {
	base := f18(t, "3")
	exponent := f18(t, "1.5")
	down, err := PowDown(base, exponent)
	assert.NoError(t, err)
	up, err := PowUp(base, exponent)
	assert.NoError(t, err)
	assert.True(t, down.Lte(up))
}

func TestPowMonotonicInBase(t *testing.T) {
	exponent := f18(t, "0.5")
	small, err := Pow(f18(t, "4"), exponent)
	assert.NoError(t, err)
	large, err := Pow(f18(t, "9"), exponent)
	assert.NoError(t, err)
	assert.True(t, small.Lt(large))
}

func TestPowDomainCheckOptOut(t *testing.T) {
	// A base/exponent pair whose log*exponent leaves [MIN_EXP, MAX_EXP]
	// should fail with the domain check enabled (the default) but may
	// be attempted with it disabled, surfacing whatever error exp
	// produces instead.
	base := f18(t, "1.0001")
	hugeExponent := f18(t, "2000000")

	_, err := Pow(base, hugeExponent)
	assert.Error(t, err)

	_, err = Pow(base, hugeExponent, WithDomainCheck(false))
	assert.Error(t, err)
}
