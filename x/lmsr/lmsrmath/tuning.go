package lmsrmath

import (
	sdkmath "cosmossdk.io/math"
)

// Policy constants for the kernel. These are named configuration rather than
// literals scattered through the arithmetic; they are fixed at compile time
// and apply to every pool.
var (
	// MaxExpArg / MinExpArg bound the argument of SafeExp. exp(100) is far
	// beyond any ratio a healthy pool can reach (q_i/b <= 1/kappa in normal
	// operation) while staying comfortably representable in LegacyDec.
	MaxExpArg = sdkmath.LegacyNewDec(100)
	MinExpArg = sdkmath.LegacyNewDec(-100)

	// SolverTolerance is the bisection tolerance for single-asset liquidity
	// operations, in internal (18-decimal) units of the deposit amount.
	SolverTolerance = sdkmath.LegacyNewDecWithPrec(1, 6) // 1e-6

	// Balanced-regime approximation preconditions. The surrogate only runs
	// when the pool imbalance delta = (q_i-q_j)/b and the trade size
	// tau = a/b are both small; everything else takes the exact path.
	BalancedImbalanceBound = sdkmath.LegacyNewDecWithPrec(1, 2)  // |delta| <= 0.01
	BalancedQuadraticTier  = sdkmath.LegacyNewDecWithPrec(1, 1)  // tau <= 0.1: quadratic
	BalancedTradeBound     = sdkmath.LegacyNewDecWithPrec(5, 1)  // tau <= 0.5: cubic
	BalancedLimitBound     = sdkmath.LegacyNewDecWithPrec(1, 1)  // |limit/r0 - 1| <= 0.1
)

const (
	// MaxBracketIterations caps the doubling phase of the single-asset
	// deposit solver; 64 doublings from any positive seed overshoots every
	// representable deposit.
	MaxBracketIterations = 64

	// MaxBisectIterations caps the bisection phase. The bracket halves each
	// step, so 128 iterations reduce any bracket below tolerance long before
	// the cap; hitting it is reported as non-convergence, never looped past.
	MaxBisectIterations = 128

	// expTaylorTerms / lnSeriesTerms bound the series used by SafeExp and
	// SafeLn. With the argument ranges produced by range reduction
	// (fraction in [0,1), atanh argument <= 1/3) both series are exhausted
	// below 1e-19 well before these caps.
	expTaylorTerms = 32
	lnSeriesTerms  = 41
)
