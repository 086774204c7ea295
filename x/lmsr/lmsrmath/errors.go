package lmsrmath

import (
	"cosmossdk.io/errors"
)

// Kernel sentinel errors. Codes 2-9 are reserved for the math kernel;
// keeper-level errors live in x/lmsr/types under the same codespace.
var (
	ErrDomain               = errors.Register(Codespace, 2, "argument outside safe exp/ln range")
	ErrNonPositiveDomain    = errors.Register(Codespace, 3, "guarded inner term is not strictly positive")
	ErrZeroLiquidity        = errors.Register(Codespace, 4, "pool has zero total balance")
	ErrInfeasibleOutput     = errors.Register(Codespace, 5, "requested output at or beyond the swap asymptote")
	ErrLimitNotAboveCurrent = errors.Register(Codespace, 6, "limit ratio must exceed the current pair ratio")
	ErrSolverDidNotConverge = errors.Register(Codespace, 7, "bracket/bisection solver exhausted its iteration cap")
)

// Codespace is shared with x/lmsr/types; error codes must not collide.
const Codespace = "lmsr"
