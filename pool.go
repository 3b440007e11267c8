package weightedpoolmath

import "github.com/google/uuid"

// WeightedPool bundles the value types a constant-weighted-product
// pool's math core needs — balances, normalized weights, swap fee and
// LP supply — and exposes thin wrapper methods over the free functions
// of this package. It carries no price ticks, no positions, and no
// chain state: an identifying Id plus plain value fields, holding
// only what constant-weighted-product math needs.
type WeightedPool struct {
	Id       uuid.UUID
	Balances []Fixed18
	Weights  []Fixed18
	SwapFee  Fixed18
	Supply   Fixed18
}

// NewWeightedPool validates weights and balances and returns a pool
// with the given initial supply.
func NewWeightedPool(balances, weights []Fixed18, swapFee, supply Fixed18) (*WeightedPool, error) {
	if err := ValidateWeights(weights); err != nil {
		return nil, err
	}
	if err := ValidateBalances(balances, weights); err != nil {
		return nil, err
	}
	return &WeightedPool{
		Id:       uuid.New(),
		Balances: balances,
		Weights:  weights,
		SwapFee:  swapFee,
		Supply:   supply,
	}, nil
}

// Invariant returns Π(balances[i]^weights[i]) for the pool's current
// state.
func (p *WeightedPool) Invariant() (Fixed18, error) {
	return Invariant(p.Weights, p.Balances)
}

// OutGivenIn prices a swap from token index i into token index o,
// fixing the input amount.
func (p *WeightedPool) OutGivenIn(i, o int, amountIn Fixed18) (Fixed18, error) {
	return OutGivenIn(p.Balances[i], p.Weights[i], p.Balances[o], p.Weights[o], amountIn)
}

// InGivenOut prices a swap from token index i into token index o,
// fixing the output amount.
func (p *WeightedPool) InGivenOut(i, o int, amountOut Fixed18) (Fixed18, error) {
	return InGivenOut(p.Balances[i], p.Weights[i], p.Balances[o], p.Weights[o], amountOut)
}

// BPTOutGivenExactTokensIn prices a multi-token join against the
// pool's current balances and supply.
func (p *WeightedPool) BPTOutGivenExactTokensIn(amountsIn []Fixed18) (Fixed18, error) {
	return BPTOutGivenExactTokensIn(p.Balances, p.Weights, amountsIn, p.Supply, p.SwapFee)
}

// TokenInGivenExactBPTOut prices a single-token join for token index i
// against the pool's current supply.
func (p *WeightedPool) TokenInGivenExactBPTOut(i int, bptOut Fixed18) (Fixed18, error) {
	return TokenInGivenExactBPTOut(p.Balances[i], p.Weights[i], bptOut, p.Supply, p.SwapFee)
}

// AllTokensInGivenExactBPTOut prices a proportional join against the
// pool's current balances and supply.
func (p *WeightedPool) AllTokensInGivenExactBPTOut(bptOut Fixed18) ([]Fixed18, error) {
	return AllTokensInGivenExactBPTOut(p.Balances, bptOut, p.Supply)
}

// BPTInGivenExactTokensOut prices a multi-token exit against the
// pool's current balances and supply.
func (p *WeightedPool) BPTInGivenExactTokensOut(amountsOut []Fixed18) (Fixed18, error) {
	return BPTInGivenExactTokensOut(p.Balances, p.Weights, amountsOut, p.Supply, p.SwapFee)
}

// TokenOutGivenExactBPTIn prices a single-token exit for token index i
// against the pool's current supply.
func (p *WeightedPool) TokenOutGivenExactBPTIn(i int, bptIn Fixed18) (Fixed18, error) {
	return TokenOutGivenExactBPTIn(p.Balances[i], p.Weights[i], bptIn, p.Supply, p.SwapFee)
}

// TokensOutGivenExactBPTIn prices a proportional exit against the
// pool's current balances and supply.
func (p *WeightedPool) TokensOutGivenExactBPTIn(bptIn Fixed18) ([]Fixed18, error) {
	return TokensOutGivenExactBPTIn(p.Balances, bptIn, p.Supply)
}
