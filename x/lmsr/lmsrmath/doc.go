// Package lmsrmath implements the pricing-and-liquidity kernel of the
// liquidity-sensitive LMSR market maker: a logarithmic scoring rule cost
// function whose liquidity parameter scales with pool size, b(q) = kappa*S(q).
//
// Every function in this package is pure: it reads a balance vector and a
// small set of immutable parameters and returns deltas. No function mutates
// its inputs, touches a store, or moves tokens - that is the keeper's job.
// All arithmetic is 18-decimal fixed point (math.LegacyDec); transcendental
// evaluation (exp/ln) is done with bounded series under explicit domain
// guards so that no call can produce a non-monotone or out-of-domain result.
package lmsrmath
