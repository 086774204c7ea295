package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// ProportionalDeposit returns the per-asset amounts for scaling the pool by
// (1+alpha): amounts_i = alpha*q_i. No solver is involved; the scaling is a
// closed form and leaves every pairwise ratio unchanged.
func ProportionalDeposit(q []sdkmath.LegacyDec, alpha sdkmath.LegacyDec) ([]sdkmath.LegacyDec, error) {
	if alpha.IsNil() || !alpha.IsPositive() {
		return nil, ErrDomain.Wrapf("growth factor %s must be positive", alpha)
	}
	amounts := make([]sdkmath.LegacyDec, len(q))
	for k, qk := range q {
		amounts[k] = alpha.Mul(qk)
	}
	return amounts, nil
}

// ProportionalWithdraw returns the per-asset amounts for scaling the pool by
// (1-alpha), alpha in (0,1].
func ProportionalWithdraw(q []sdkmath.LegacyDec, alpha sdkmath.LegacyDec) ([]sdkmath.LegacyDec, error) {
	if alpha.IsNil() || !alpha.IsPositive() || alpha.GT(sdkmath.LegacyOneDec()) {
		return nil, ErrDomain.Wrapf("burn fraction %s must be in (0,1]", alpha)
	}
	amounts := make([]sdkmath.LegacyDec, len(q))
	for k, qk := range q {
		amounts[k] = alpha.Mul(qk)
	}
	return amounts, nil
}

// SingleDepositResult is the outcome of a single-asset deposit solve.
type SingleDepositResult struct {
	// Alpha is the uniform growth factor realized by the deposit.
	Alpha sdkmath.LegacyDec
	// Used is a_req(alpha), the portion of the deposit actually consumed;
	// always <= the offered amount, the remainder is refunded by the caller.
	Used sdkmath.LegacyDec
	// Iterations is the bisection count, exported for telemetry.
	Iterations int
}

// SingleAssetDeposit solves for the growth factor alpha >= 0 such that
//
//	a_req(alpha) = alpha*q_i + sum_{j != i} x_j(alpha)
//
// equals the offered deposit, where x_j(alpha) is the exact-out input (in
// asset i) required to realize an output of alpha*q_j in asset j. Each x_j
// is convex and increasing and the direct term is linear with q_i > 0, so
// a_req is strictly increasing and the root is unique. The solve brackets
// from a seed of deposit/S and bisects to SolverTolerance; a per-asset
// domain-guard violation during the search marks that alpha infeasible and
// narrows the bracket rather than aborting.
func SingleAssetDeposit(q []sdkmath.LegacyDec, i int, deposit, kappa sdkmath.LegacyDec) (SingleDepositResult, error) {
	if i < 0 || i >= len(q) {
		return SingleDepositResult{}, ErrDomain.Wrapf("asset index %d out of range for %d assets", i, len(q))
	}
	if deposit.IsNil() || !deposit.IsPositive() {
		return SingleDepositResult{}, ErrDomain.Wrapf("deposit %s must be positive", deposit)
	}
	b, err := LiquidityScale(q, kappa)
	if err != nil {
		return SingleDepositResult{}, err
	}
	if !q[i].IsPositive() {
		return SingleDepositResult{}, ErrZeroLiquidity.Wrapf("asset %d has zero balance", i)
	}

	s := Sum(q)
	invB := sdkmath.LegacyOneDec().Quo(b)

	// Pair ratios are evaluated once; b is quasi-static for the whole solve.
	ratios := make([]sdkmath.LegacyDec, len(q))
	for j := range q {
		if j == i {
			continue
		}
		r0, err := PairRatio(q, i, j, b)
		if err != nil {
			return SingleDepositResult{}, err
		}
		ratios[j] = r0
	}

	required := func(alpha sdkmath.LegacyDec) (sdkmath.LegacyDec, bool, error) {
		total := alpha.Mul(q[i])
		for j := range q {
			if j == i {
				continue
			}
			x, err := exactOutWithRatio(ratios[j], alpha.Mul(q[j]), b, invB)
			if err != nil {
				if isDomainGuard(err) {
					return sdkmath.LegacyDec{}, false, nil
				}
				return sdkmath.LegacyDec{}, false, err
			}
			total = total.Add(x)
		}
		return total, true, nil
	}

	seed := deposit.Quo(s)
	alpha, iters, err := bracketBisect(required, deposit, seed, SolverTolerance, MaxBracketIterations, MaxBisectIterations)
	if err != nil {
		return SingleDepositResult{}, err
	}
	used, feasible, err := required(alpha)
	if err != nil {
		return SingleDepositResult{}, err
	}
	if !feasible {
		return SingleDepositResult{}, ErrSolverDidNotConverge.Wrapf("solution %s landed on an infeasible point", alpha)
	}
	return SingleDepositResult{Alpha: alpha, Used: used, Iterations: iters}, nil
}

// Contribution is the tagged outcome of one per-asset sub-computation in a
// single-asset withdrawal: either an amount of the target asset or an
// explicit skip. Summation at the end preserves partial-success semantics
// without using failures as control flow.
type Contribution struct {
	Index   int
	Amount  sdkmath.LegacyDec
	Skipped bool
}

// SingleWithdrawResult is the outcome of a single-asset withdrawal.
type SingleWithdrawResult struct {
	// Payout is the total amount of the target asset:
	// alpha*q_i plus every non-skipped swap contribution.
	Payout sdkmath.LegacyDec
	// Contributions records the per-asset outcomes, direct term excluded.
	Contributions []Contribution
}

// SingleAssetWithdraw burns the fraction alpha in (0,1] of the pool and
// converts every non-target asset's share into the target asset i. The
// conversion runs on the local post-burn state (1-alpha)*q with b held at
// its local value: each j != i is swapped j->i exact-in with input
// alpha*q_j, capped at the remaining local balance of i. A per-asset domain
// failure contributes zero for that asset and the redemption continues -
// a partial payout beats an abort here.
func SingleAssetWithdraw(q []sdkmath.LegacyDec, i int, alpha, kappa sdkmath.LegacyDec) (SingleWithdrawResult, error) {
	if i < 0 || i >= len(q) {
		return SingleWithdrawResult{}, ErrDomain.Wrapf("asset index %d out of range for %d assets", i, len(q))
	}
	if alpha.IsNil() || !alpha.IsPositive() || alpha.GT(sdkmath.LegacyOneDec()) {
		return SingleWithdrawResult{}, ErrDomain.Wrapf("burn fraction %s must be in (0,1]", alpha)
	}

	local := make([]sdkmath.LegacyDec, len(q))
	scale := sdkmath.LegacyOneDec().Sub(alpha)
	for k, qk := range q {
		local[k] = scale.Mul(qk)
	}

	// Direct redemption term; a failure here aborts the whole operation.
	payout := alpha.Mul(q[i])

	b, err := LiquidityScale(local, kappa)
	if err != nil {
		if alpha.Equal(sdkmath.LegacyOneDec()) {
			// Full burn leaves no pool to swap against: the direct term is
			// the entire payout for asset i and nothing else convertible.
			return SingleWithdrawResult{Payout: payout}, nil
		}
		return SingleWithdrawResult{}, err
	}

	contribs := make([]Contribution, 0, len(q)-1)
	for j := range q {
		if j == i {
			continue
		}
		quote, err := ExactIn(local, j, i, alpha.Mul(q[j]), b)
		if err != nil {
			if isDomainGuard(err) {
				contribs = append(contribs, Contribution{Index: j, Amount: sdkmath.LegacyZeroDec(), Skipped: true})
				continue
			}
			return SingleWithdrawResult{}, err
		}
		payout = payout.Add(quote.AmountOut)
		local[j] = local[j].Add(quote.AmountIn)
		local[i] = local[i].Sub(quote.AmountOut)
		contribs = append(contribs, Contribution{Index: j, Amount: quote.AmountOut})
	}

	return SingleWithdrawResult{Payout: payout, Contributions: contribs}, nil
}
