package weightedpoolmath

import "github.com/CoinSummer/weighted-poolmath/internal/u256"

// BPTForOwnership returns the LP amount a protocol-fee collector must
// be minted to end up owning exactly ownershipPct of the post-mint
// supply:
//
//	bpt_for_ownership(supply, pct) = mul_div(supply, pct, ONE - pct)
//
// using floor division. Fails ErrDivByZero when
// ownershipPct >= ONE (100% ownership is not representable as a
// finite mint against a nonzero existing supply).
func BPTForOwnership(totalSupply, ownershipPct Fixed18) (Fixed18, error) {
	if ownershipPct.Gte(OneFixed18) {
		return ZeroFixed18, ErrDivByZero
	}
	denominator := Complement(ownershipPct)
	raw, err := u256.MulDiv(totalSupply.raw, ownershipPct.raw, denominator.raw)
	if err != nil {
		return ZeroFixed18, ErrOverflow
	}
	return Fixed18{raw: raw}, nil
}
