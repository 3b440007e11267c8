// Command weightedpoolmath-demo runs a scripted sequence of swaps and
// joins against an in-memory weighted pool and logs the result of each
// step. It exists to exercise the pure math core from outside a test
// binary, kept deliberately thin.
package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	weightedpoolmath "github.com/CoinSummer/weighted-poolmath"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	runID := uuid.New()

	weights := mustFixed18s("0.5", "0.5")
	balances := mustFixed18s("100", "100")
	swapFee := mustFixed18("0.003")
	supply := mustFixed18("100")

	pool, err := weightedpoolmath.NewWeightedPool(balances, weights, swapFee, supply)
	if err != nil {
		log.WithField("run_id", runID).WithError(err).Fatal("failed to construct pool")
	}

	invariant, err := pool.Invariant()
	logStep(log, runID, "invariant", nil, invariant, err)

	amountIn := mustFixed18("10")
	amountOut, err := pool.OutGivenIn(0, 1, amountIn)
	logStep(log, runID, "out_given_in", map[string]any{"amount_in": amountIn.Decimal().String()}, amountOut, err)

	bptOut, err := pool.BPTOutGivenExactTokensIn(mustFixed18s("1", "1"))
	logStep(log, runID, "bpt_out_given_exact_tokens_in", nil, bptOut, err)
}

func logStep(log *logrus.Logger, runID uuid.UUID, step string, extra map[string]any, result weightedpoolmath.Fixed18, err error) {
	fields := logrus.Fields{"run_id": runID, "step": step}
	for k, v := range extra {
		fields[k] = v
	}
	if err != nil {
		log.WithFields(fields).WithError(err).Error("step failed")
		os.Exit(1)
	}
	fields["result"] = result.Decimal().String()
	log.WithFields(fields).Info("step completed")
}

func mustFixed18(s string) weightedpoolmath.Fixed18 {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	f, err := weightedpoolmath.Fixed18FromDecimal(d)
	if err != nil {
		panic(err)
	}
	return f
}

func mustFixed18s(ss ...string) []weightedpoolmath.Fixed18 {
	out := make([]weightedpoolmath.Fixed18, len(ss))
	for i, s := range ss {
		out[i] = mustFixed18(s)
	}
	return out
}
