package weightedpoolmath

// BPTOutAddToken computes the LP amount minted to the account
// receiving the diluted share when a new token joins a pool at
// newWeight, without requiring any new token balance to be deposited
// yet. The existing pool's combined weight shrinks from
// 1 to 1-newWeight, so supply must grow by the same ratio to keep
// existing holders' share of the pool unchanged. Fails ErrOverflow
// when newWeight >= ONE, since the pool cannot cede its entire weight
// to a single new token.
func BPTOutAddToken(supply, newWeight Fixed18) (Fixed18, error) {
	if newWeight.Gte(OneFixed18) {
		return ZeroFixed18, ErrOverflow
	}
	remainingWeight := Complement(newWeight)
	weightSumRatio, err := DivDown(OneFixed18, remainingWeight)
	if err != nil {
		return ZeroFixed18, err
	}
	diff, err := Sub(weightSumRatio, OneFixed18)
	if err != nil {
		return ZeroFixed18, err
	}
	return MulDown(supply, diff)
}
