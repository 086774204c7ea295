package lmsrmath

import (
	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// evalFn evaluates the monotone objective at a trial point. feasible=false
// marks a trial whose evaluation hit a domain guard; the solver treats such
// points as lying above the target and narrows the bracket instead of
// aborting.
type evalFn func(x sdkmath.LegacyDec) (value sdkmath.LegacyDec, feasible bool, err error)

// bracketBisect finds the unique root of f(x) = target for a strictly
// increasing f with f(0) = 0 <= target. It first doubles from the seed until
// the target (or an infeasible region) is bracketed, then bisects to
// tolerance. The iteration caps are explicit; exhausting either fails with
// ErrSolverDidNotConverge rather than looping further. Returns the solution
// and the number of bisection iterations spent.
func bracketBisect(f evalFn, target, seed, tol sdkmath.LegacyDec, maxBracket, maxBisect int) (sdkmath.LegacyDec, int, error) {
	if target.IsNegative() {
		return sdkmath.LegacyDec{}, 0, ErrDomain.Wrapf("solver target %s must be non-negative", target)
	}
	if target.IsZero() {
		return sdkmath.LegacyZeroDec(), 0, nil
	}
	if !seed.IsPositive() {
		return sdkmath.LegacyDec{}, 0, ErrDomain.Wrapf("solver seed %s must be positive", seed)
	}

	lo := sdkmath.LegacyZeroDec()
	hi := seed
	bracketed := false
	for it := 0; it < maxBracket; it++ {
		v, feasible, err := f(hi)
		if err != nil {
			return sdkmath.LegacyDec{}, 0, err
		}
		if !feasible || v.GTE(target) {
			bracketed = true
			break
		}
		lo = hi
		hi = hi.MulInt64(2)
	}
	if !bracketed {
		return sdkmath.LegacyDec{}, 0, ErrSolverDidNotConverge.Wrapf("target %s not bracketed after %d doublings", target, maxBracket)
	}

	for it := 0; it < maxBisect; it++ {
		mid := lo.Add(hi).QuoInt64(2)
		v, feasible, err := f(mid)
		if err != nil {
			return sdkmath.LegacyDec{}, 0, err
		}
		switch {
		case !feasible:
			hi = mid
		case v.Sub(target).Abs().LTE(tol):
			return mid, it + 1, nil
		case v.LT(target):
			lo = mid
		default:
			hi = mid
		}
		if hi.Sub(lo).LTE(tol) {
			// The bracket is narrower than the tolerance in x. Returning the
			// feasible lower edge keeps f(lo) <= target, so the solve never
			// over-consumes; the shortfall in f is the bracket width scaled by
			// the local slope.
			return lo, it + 1, nil
		}
	}
	return sdkmath.LegacyDec{}, maxBisect, ErrSolverDidNotConverge.Wrapf("bisection cap %d exhausted for target %s", maxBisect, target)
}

// isDomainGuard reports whether an error is one of the kernel's domain
// guards, i.e. a signal that a trial point is infeasible rather than that
// the whole operation is broken.
func isDomainGuard(err error) bool {
	return errors.IsOf(err, ErrDomain, ErrNonPositiveDomain, ErrInfeasibleOutput)
}
