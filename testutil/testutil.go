// Package testutil provides small helpers for constructing weighted-pool
// math fixtures from decimal literals in tests, rather than hand-typing
// raw scaled integers.
package testutil

import (
	"github.com/shopspring/decimal"

	weightedpoolmath "github.com/CoinSummer/weighted-poolmath"
)

// F18 parses a base-10 decimal literal (e.g. "100.5") into a Fixed18,
// panicking on malformed input — used only in test fixtures, never in
// library code.
func F18(s string) weightedpoolmath.Fixed18 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("testutil: invalid decimal literal " + s)
	}
	f, err := weightedpoolmath.Fixed18FromDecimal(d)
	if err != nil {
		panic(err)
	}
	return f
}

// SF18 parses a base-10 decimal literal into an SFixed18.
func SF18(s string) weightedpoolmath.SFixed18 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("testutil: invalid decimal literal " + s)
	}
	f, err := weightedpoolmath.SFixed18FromDecimal(d)
	if err != nil {
		panic(err)
	}
	return f
}

// F18Slice parses a slice of decimal literals into Fixed18 values.
func F18Slice(ss ...string) []weightedpoolmath.Fixed18 {
	out := make([]weightedpoolmath.Fixed18, len(ss))
	for i, s := range ss {
		out[i] = F18(s)
	}
	return out
}
